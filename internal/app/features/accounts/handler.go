package accounts

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	accountstore "github.com/facilitiease/facilitiease/internal/app/store/accounts"
	"github.com/facilitiease/facilitiease/internal/app/system/normalize"
	"github.com/facilitiease/facilitiease/internal/app/system/ratelimit"
	"github.com/facilitiease/facilitiease/internal/app/system/sanitize"
	"github.com/facilitiease/facilitiease/internal/app/system/timeouts"
	"github.com/facilitiease/facilitiease/internal/app/system/webapi"
	"github.com/facilitiease/facilitiease/internal/domain/models"
)

// Handler provisions new accounts.
type Handler struct {
	Accounts *accountstore.Store
	Limiter  *ratelimit.Limiter
	Errs     *webapi.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(accounts *accountstore.Store, limiter *ratelimit.Limiter, logger *zap.Logger) *Handler {
	return &Handler{
		Accounts: accounts,
		Limiter:  limiter,
		Errs:     webapi.NewErrorLogger(logger),
		Log:      logger,
	}
}

type createRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`

	// Startup seed.
	StartupName   string `json:"startup_name"`
	ContactName   string `json:"contact_name"`
	ContactNumber string `json:"contact_number"`

	// Service provider seed.
	ServiceName          string `json:"service_name"`
	PrimaryContactNumber string `json:"primary_contact_number"`
}

type createResponse struct {
	AccountID string `json:"account_id"`
}

const minPasswordLen = 8

// ServeCreate handles POST /accounts.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	if !h.Limiter.Allow(ratelimit.ClientIP(r)) {
		webapi.Error(w, webapi.CodeRateLimited, "Too many signup attempts. Try again later.")
		return
	}

	var req createRequest
	if err := webapi.Decode(w, r, &req); err != nil {
		h.Errs.BadRequest(w, r, "signup: decode body", err, "Invalid request body.")
		return
	}

	if msg := validateCreate(&req); msg != "" {
		webapi.Error(w, webapi.CodeValidation, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Accounts.Create(ctx, accountstore.NewAccount{
		Email:                req.Email,
		Password:             req.Password,
		Role:                 req.Role,
		StartupName:          sanitize.Text(req.StartupName),
		ContactName:          sanitize.Text(req.ContactName),
		ContactNumber:        sanitize.Text(req.ContactNumber),
		ServiceName:          sanitize.Text(req.ServiceName),
		PrimaryContactNumber: sanitize.Text(req.PrimaryContactNumber),
	})
	if err != nil {
		if errors.Is(err, accountstore.ErrAlreadyExists) {
			webapi.Error(w, webapi.CodeAlreadyExists, "An account with this email already exists.")
			return
		}
		h.Errs.Internal(w, r, "signup: create account", err)
		return
	}

	h.Log.Info("account created",
		zap.String("account_id", user.ID.Hex()),
		zap.String("role", user.Role))

	webapi.JSON(w, http.StatusCreated, createResponse{AccountID: user.ID.Hex()})
}

// validateCreate returns a user-facing message, or "" when the request is
// acceptable.
func validateCreate(req *createRequest) string {
	email := normalize.Email(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return "A valid email is required."
	}
	if len(req.Password) < minPasswordLen {
		return "Password must be at least 8 characters."
	}

	switch normalize.Role(req.Role) {
	case models.RoleStartup:
		if strings.TrimSpace(req.StartupName) == "" {
			return "Startup name is required."
		}
		if strings.TrimSpace(req.ContactName) == "" {
			return "Contact name is required."
		}
		if strings.TrimSpace(req.ContactNumber) == "" {
			return "Contact number is required."
		}
	case models.RoleServiceProvider:
		if strings.TrimSpace(req.ServiceName) == "" {
			return "Service name is required."
		}
		if strings.TrimSpace(req.PrimaryContactNumber) == "" {
			return "Primary contact number is required."
		}
	default:
		return "Role must be startup or service_provider."
	}
	return ""
}
