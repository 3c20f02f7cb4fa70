package profiles

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	providerstore "github.com/facilitiease/facilitiease/internal/app/store/providers"
	startupstore "github.com/facilitiease/facilitiease/internal/app/store/startups"
	"github.com/facilitiease/facilitiease/internal/app/system/auth"
	"github.com/facilitiease/facilitiease/internal/app/system/sanitize"
	"github.com/facilitiease/facilitiease/internal/app/system/timeouts"
	"github.com/facilitiease/facilitiease/internal/app/system/webapi"
	"github.com/facilitiease/facilitiease/internal/domain/models"
)

// Handler reads and updates role profiles. The acting identity always comes
// from the session; the URL parameter only confirms the caller is patching
// their own profile.
type Handler struct {
	Startups  *startupstore.Store
	Providers *providerstore.Store
	Errs      *webapi.ErrorLogger
	Log       *zap.Logger
}

func NewHandler(startups *startupstore.Store, providers *providerstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Startups:  startups,
		Providers: providers,
		Errs:      webapi.NewErrorLogger(logger),
		Log:       logger,
	}
}

// ServeUpdate handles PATCH /profiles/{userID}.
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		webapi.Error(w, webapi.CodeUnauthenticated, "Sign in required.")
		return
	}
	if chi.URLParam(r, "userID") != user.ID {
		webapi.Error(w, webapi.CodeForbidden, "You can only update your own profile.")
		return
	}

	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		h.Errs.Internal(w, r, "profile update: session user id", err)
		return
	}

	var raw map[string]any
	if err := webapi.Decode(w, r, &raw); err != nil {
		h.Errs.BadRequest(w, r, "profile update: decode body", err, "Invalid request body.")
		return
	}

	patch, err := cleanPatch(raw)
	if err != nil {
		webapi.Error(w, webapi.CodeValidation, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	switch user.Role {
	case models.RoleStartup:
		err = h.Startups.Update(ctx, userID, patch)
		if errors.Is(err, startupstore.ErrNotFound) {
			webapi.Error(w, webapi.CodeNotFound, "Profile not found.")
			return
		}
	case models.RoleServiceProvider:
		err = h.Providers.Update(ctx, userID, patch)
		if errors.Is(err, providerstore.ErrNotFound) {
			webapi.Error(w, webapi.CodeNotFound, "Profile not found.")
			return
		}
	default:
		webapi.Error(w, webapi.CodeForbidden, "Unknown account role.")
		return
	}
	if err != nil {
		// Unknown fields come back from the store as plain errors.
		webapi.Error(w, webapi.CodeValidation, err.Error())
		return
	}

	h.Log.Info("profile updated",
		zap.String("account_id", user.ID),
		zap.Int("fields", len(patch)))

	webapi.JSON(w, http.StatusOK, map[string]any{"updated": true})
}

// cleanPatch sanitizes string values and keeps explicit nulls. Profile
// fields are all text, so anything else is rejected.
func cleanPatch(raw map[string]any) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, errors.New("patch must set at least one field")
	}
	patch := make(map[string]any, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			patch[k] = sanitize.Text(val)
		case nil:
			patch[k] = nil
		default:
			return nil, fmt.Errorf("field %q must be a string or null", k)
		}
	}
	return patch, nil
}

type meResponse struct {
	Role     string `json:"role"`
	Complete bool   `json:"complete"`
	Profile  any    `json:"profile"`
}

// ServeMe handles GET /profiles/me.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		webapi.Error(w, webapi.CodeUnauthenticated, "Sign in required.")
		return
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		h.Errs.Internal(w, r, "profile me: session user id", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	switch user.Role {
	case models.RoleStartup:
		p, err := h.Startups.GetByUserID(ctx, userID)
		if err != nil {
			h.Errs.Internal(w, r, "profile me: load startup profile", err)
			return
		}
		if p == nil {
			webapi.Error(w, webapi.CodeNotFound, "Profile not found.")
			return
		}
		webapi.JSON(w, http.StatusOK, meResponse{Role: user.Role, Complete: p.Complete(), Profile: p})
	case models.RoleServiceProvider:
		p, err := h.Providers.GetByUserID(ctx, userID)
		if err != nil {
			h.Errs.Internal(w, r, "profile me: load provider profile", err)
			return
		}
		if p == nil {
			webapi.Error(w, webapi.CodeNotFound, "Profile not found.")
			return
		}
		webapi.JSON(w, http.StatusOK, meResponse{Role: user.Role, Complete: p.Complete(), Profile: p})
	default:
		webapi.Error(w, webapi.CodeForbidden, "Unknown account role.")
	}
}
