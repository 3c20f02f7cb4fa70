package facilities

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	facilitystore "github.com/facilitiease/facilitiease/internal/app/store/facilities"
	providerstore "github.com/facilitiease/facilitiease/internal/app/store/providers"
	"github.com/facilitiease/facilitiease/internal/app/system/auth"
	"github.com/facilitiease/facilitiease/internal/app/system/sanitize"
	"github.com/facilitiease/facilitiease/internal/app/system/timeouts"
	"github.com/facilitiease/facilitiease/internal/app/system/webapi"
	"github.com/facilitiease/facilitiease/internal/domain/models"
)

// Handler accepts and lists facility submissions. Only service providers
// reach these handlers; the listing owner is always the provider profile
// behind the session, never an id from the request.
type Handler struct {
	Facilities *facilitystore.Store
	Providers  *providerstore.Store
	Errs       *webapi.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(facilities *facilitystore.Store, providers *providerstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Facilities: facilities,
		Providers:  providers,
		Errs:       webapi.NewErrorLogger(logger),
		Log:        logger,
	}
}

type createRequest struct {
	FacilityType string         `json:"facility_type"`
	Details      map[string]any `json:"details"`
}

// ServeCreate handles POST /facilities.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	var req createRequest
	if err := webapi.Decode(w, r, &req); err != nil {
		h.Errs.BadRequest(w, r, "facility create: decode body", err, "Invalid request body.")
		return
	}
	if !models.ValidFacilityType(req.FacilityType) {
		webapi.Error(w, webapi.CodeValidation, "Unknown facility type.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	profile, err := h.providerProfile(ctx, user)
	if err != nil {
		h.Errs.Internal(w, r, "facility create: load provider profile", err)
		return
	}
	if profile == nil {
		webapi.Error(w, webapi.CodeNotFound, "Complete your provider profile before listing facilities.")
		return
	}

	details := bson.M{}
	for k, v := range req.Details {
		details[k] = sanitizeValue(v)
	}

	f, err := h.Facilities.Create(ctx, profile.ID, req.FacilityType, details)
	if err != nil {
		// Store-level failures here are validation: unknown type is caught
		// above, so this is a missing required key.
		webapi.Error(w, webapi.CodeValidation, err.Error())
		return
	}

	h.Log.Info("facility submitted",
		zap.String("facility_id", f.ID.Hex()),
		zap.String("facility_type", f.FacilityType),
		zap.String("provider_id", profile.ID.Hex()))

	webapi.JSON(w, http.StatusCreated, f)
}

// ServeList handles GET /facilities: the provider's own listings.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	profile, err := h.providerProfile(ctx, user)
	if err != nil {
		h.Errs.Internal(w, r, "facility list: load provider profile", err)
		return
	}
	if profile == nil {
		webapi.Error(w, webapi.CodeNotFound, "No provider profile for this account.")
		return
	}

	list, err := h.Facilities.ListByProvider(ctx, profile.ID)
	if err != nil {
		h.Errs.Internal(w, r, "facility list: query", err)
		return
	}
	webapi.JSON(w, http.StatusOK, map[string]any{"facilities": list})
}

func (h *Handler) providerProfile(ctx context.Context, user *auth.SessionUser) (*models.ServiceProviderProfile, error) {
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return nil, err
	}
	return h.Providers.GetByUserID(ctx, userID)
}

// sanitizeValue strips markup from every string reachable in a details
// value. Numbers, booleans, and nulls pass through untouched.
func sanitizeValue(v any) any {
	switch val := v.(type) {
	case string:
		return sanitize.Text(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = sanitizeValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = sanitizeValue(item)
		}
		return out
	default:
		return v
	}
}
