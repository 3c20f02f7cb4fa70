// internal/app/system/webapi/errorlogger.go
package webapi

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger pairs structured logging with client-safe error responses.
// Handlers call one method; the log line carries the internal detail and the
// client sees only the taxonomy code and a user-safe message.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger on the given zap logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// Internal logs an unexpected failure and responds with the internal code.
func (e *ErrorLogger) Internal(w http.ResponseWriter, r *http.Request, what string, err error) {
	e.log.Error(what,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	Error(w, CodeInternal, "A server error occurred.")
}

// BadRequest logs a malformed request and responds with the validation code.
func (e *ErrorLogger) BadRequest(w http.ResponseWriter, r *http.Request, what string, err error, userMsg string) {
	e.log.Warn(what,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	Error(w, CodeValidation, userMsg)
}
