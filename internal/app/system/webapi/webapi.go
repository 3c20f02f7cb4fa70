// internal/app/system/webapi/webapi.go

// Package webapi holds the JSON plumbing shared by every feature handler:
// request decoding, response encoding, and the error taxonomy surfaced to
// clients. Domain errors map to stable codes; anything unexpected collapses
// to "internal" with no detail leaked.
package webapi

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Error codes surfaced to clients. These are stable API contract values.
const (
	CodeAlreadyExists      = "already_exists"
	CodeInvalidCredentials = "invalid_credentials"
	CodeValidation         = "validation"
	CodeNotFound           = "not_found"
	CodeUnauthenticated    = "unauthenticated"
	CodeForbidden          = "forbidden"
	CodeRateLimited        = "rate_limited"
	CodeInternal           = "internal"
)

// statusFor maps an error code to its HTTP status.
func statusFor(code string) int {
	switch code {
	case CodeAlreadyExists, CodeValidation:
		return http.StatusBadRequest
	case CodeInvalidCredentials, CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// maxBodyBytes caps JSON request bodies. Facility detail payloads are the
// largest legitimate bodies and stay well under this.
const maxBodyBytes = 1 << 20

// Decode reads the request body as JSON into dst.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return errors.New("invalid JSON body")
	}
	return nil
}

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a taxonomy error response.
func Error(w http.ResponseWriter, code, message string) {
	JSON(w, statusFor(code), errorBody{Error: errorDetail{Code: code, Message: message}})
}
