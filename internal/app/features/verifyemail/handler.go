package verifyemail

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	emailverifystore "github.com/facilitiease/facilitiease/internal/app/store/emailverify"
	userstore "github.com/facilitiease/facilitiease/internal/app/store/users"
	"github.com/facilitiease/facilitiease/internal/app/system/auth"
	"github.com/facilitiease/facilitiease/internal/app/system/timeouts"
	"github.com/facilitiease/facilitiease/internal/app/system/webapi"
)

// Handler issues and confirms email verification codes for the signed-in
// user.
type Handler struct {
	Users  *userstore.Store
	Codes  *emailverifystore.Store
	Sender Sender
	Errs   *webapi.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(users *userstore.Store, codes *emailverifystore.Store, sender Sender, logger *zap.Logger) *Handler {
	if sender == nil {
		sender = &LogSender{Log: logger}
	}
	return &Handler{
		Users:  users,
		Codes:  codes,
		Sender: sender,
		Errs:   webapi.NewErrorLogger(logger),
		Log:    logger,
	}
}

// ServeIssue handles POST /verifications.
func (h *Handler) ServeIssue(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		h.Errs.Internal(w, r, "verify issue: session user id", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	code, err := h.Codes.Issue(ctx, userID, user.Email)
	if errors.Is(err, emailverifystore.ErrResendLimited) {
		webapi.Error(w, webapi.CodeRateLimited, "Too many codes requested. Try again later.")
		return
	}
	if err != nil {
		h.Errs.Internal(w, r, "verify issue: create code", err)
		return
	}

	if err := h.Sender.SendCode(user.Email, code); err != nil {
		h.Errs.Internal(w, r, "verify issue: send code", err)
		return
	}

	webapi.JSON(w, http.StatusAccepted, map[string]any{"sent": true})
}

type confirmRequest struct {
	Code string `json:"code"`
}

// ServeConfirm handles POST /verifications/confirm.
func (h *Handler) ServeConfirm(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r)
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		h.Errs.Internal(w, r, "verify confirm: session user id", err)
		return
	}

	var req confirmRequest
	if err := webapi.Decode(w, r, &req); err != nil {
		h.Errs.BadRequest(w, r, "verify confirm: decode body", err, "Invalid request body.")
		return
	}
	req.Code = strings.TrimSpace(req.Code)
	if len(req.Code) != 6 {
		webapi.Error(w, webapi.CodeValidation, "Code must be 6 digits.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	switch err := h.Codes.Confirm(ctx, userID, req.Code); {
	case err == nil:
		// fall through to marking the user verified
	case errors.Is(err, emailverifystore.ErrNoCode):
		webapi.Error(w, webapi.CodeNotFound, "No verification code outstanding. Request a new one.")
		return
	case errors.Is(err, emailverifystore.ErrCodeMismatch):
		webapi.Error(w, webapi.CodeValidation, "Code does not match.")
		return
	case errors.Is(err, emailverifystore.ErrTooManyAttempts):
		webapi.Error(w, webapi.CodeRateLimited, "Too many attempts. Request a new code.")
		return
	default:
		h.Errs.Internal(w, r, "verify confirm: check code", err)
		return
	}

	if err := h.Users.MarkEmailVerified(ctx, userID); err != nil {
		h.Errs.Internal(w, r, "verify confirm: mark user", err)
		return
	}

	h.Log.Info("email verified", zap.String("account_id", user.ID))
	webapi.JSON(w, http.StatusOK, map[string]any{"verified": true})
}
