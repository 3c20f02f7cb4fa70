package sessions

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	providerstore "github.com/facilitiease/facilitiease/internal/app/store/providers"
	startupstore "github.com/facilitiease/facilitiease/internal/app/store/startups"
	userstore "github.com/facilitiease/facilitiease/internal/app/store/users"
	"github.com/facilitiease/facilitiease/internal/app/system/auth"
	"github.com/facilitiease/facilitiease/internal/app/system/credentials"
	"github.com/facilitiease/facilitiease/internal/app/system/normalize"
	"github.com/facilitiease/facilitiease/internal/app/system/ratelimit"
	"github.com/facilitiease/facilitiease/internal/app/system/timeouts"
	"github.com/facilitiease/facilitiease/internal/app/system/webapi"
	"github.com/facilitiease/facilitiease/internal/domain/models"
)

// Handler signs users in and out.
type Handler struct {
	Users      *userstore.Store
	Startups   *startupstore.Store
	Providers  *providerstore.Store
	SessionMgr *auth.SessionManager
	Limiter    *ratelimit.Limiter
	Errs       *webapi.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(users *userstore.Store, startups *startupstore.Store, providers *providerstore.Store, sessionMgr *auth.SessionManager, limiter *ratelimit.Limiter, logger *zap.Logger) *Handler {
	return &Handler{
		Users:      users,
		Startups:   startups,
		Providers:  providers,
		SessionMgr: sessionMgr,
		Limiter:    limiter,
		Errs:       webapi.NewErrorLogger(logger),
		Log:        logger,
	}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type signInResponse struct {
	AccountID          string `json:"account_id"`
	Role               string `json:"role"`
	RequiresCompletion bool   `json:"requires_completion"`
}

const badCredentialsMsg = "Email or password is incorrect."

// ServeSignIn handles POST /sessions.
//
// Unknown email, wrong password, and wrong role all produce the same 401
// body so the endpoint does not reveal which accounts exist.
func (h *Handler) ServeSignIn(w http.ResponseWriter, r *http.Request) {
	if !h.Limiter.Allow(ratelimit.ClientIP(r)) {
		webapi.Error(w, webapi.CodeRateLimited, "Too many sign-in attempts. Try again later.")
		return
	}

	var req signInRequest
	if err := webapi.Decode(w, r, &req); err != nil {
		h.Errs.BadRequest(w, r, "signin: decode body", err, "Invalid request body.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var user *models.User
	var err error
	if req.Role != "" {
		user, err = h.Users.GetByEmailAndRole(ctx, req.Email, req.Role)
	} else {
		user, err = h.Users.GetByEmail(ctx, req.Email)
	}
	if err == mongo.ErrNoDocuments {
		webapi.Error(w, webapi.CodeInvalidCredentials, badCredentialsMsg)
		return
	}
	if err != nil {
		h.Errs.Internal(w, r, "signin: load user", err)
		return
	}

	if user.AuthProvider != models.AuthProviderLocal || !credentials.Verify(req.Password, user.PasswordHash) {
		webapi.Error(w, webapi.CodeInvalidCredentials, badCredentialsMsg)
		return
	}

	requires, err := h.requiresCompletion(ctx, user)
	if err != nil {
		h.Errs.Internal(w, r, "signin: check profile completeness", err)
		return
	}

	if err := h.SessionMgr.SignIn(w, r, user); err != nil {
		h.Errs.Internal(w, r, "signin: save session", err)
		return
	}

	// A successful sign-in clears the client's throttle window.
	h.Limiter.Reset(ratelimit.ClientIP(r))

	h.Log.Info("user signed in",
		zap.String("account_id", user.ID.Hex()),
		zap.String("role", user.Role),
		zap.Bool("requires_completion", requires))

	webapi.JSON(w, http.StatusOK, signInResponse{
		AccountID:          user.ID.Hex(),
		Role:               user.Role,
		RequiresCompletion: requires,
	})
}

// requiresCompletion reports whether the user's role profile still has null
// fields. A missing profile counts as incomplete, never as an error.
func (h *Handler) requiresCompletion(ctx context.Context, user *models.User) (bool, error) {
	switch normalize.Role(user.Role) {
	case models.RoleStartup:
		p, err := h.Startups.GetByUserID(ctx, user.ID)
		if err != nil {
			return false, err
		}
		return !p.Complete(), nil
	case models.RoleServiceProvider:
		p, err := h.Providers.GetByUserID(ctx, user.ID)
		if err != nil {
			return false, err
		}
		return !p.Complete(), nil
	default:
		return true, nil
	}
}

// ServeSignOut handles DELETE /sessions.
func (h *Handler) ServeSignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Errs.Internal(w, r, "signout: clear session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
