// internal/app/features/authgoogle/handler.go
package authgoogle

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	accountstore "github.com/facilitiease/facilitiease/internal/app/store/accounts"
	userstore "github.com/facilitiease/facilitiease/internal/app/store/users"
	"github.com/facilitiease/facilitiease/internal/app/system/auth"
	"github.com/facilitiease/facilitiease/internal/app/system/timeouts"
	"github.com/facilitiease/facilitiease/internal/app/system/webapi"
	"github.com/facilitiease/facilitiease/internal/domain/models"
)

// stateCookie carries the OAuth round-trip state through the browser,
// signed so the callback can trust it.
const stateCookieName = "fe_oauth_state"

// Handler runs the Google OAuth sign-in flow. Google's subject id is the
// identity anchor: accounts created here never get a derived _id or a
// password hash.
type Handler struct {
	Users      *userstore.Store
	Accounts   *accountstore.Store
	SessionMgr *auth.SessionManager
	Errs       *webapi.ErrorLogger
	Log        *zap.Logger

	ClientID     string
	ClientSecret string
	RedirectURL  string

	stateCodec *securecookie.SecureCookie
}

// NewHandler creates the Google OAuth handler. stateKey signs the state
// cookie and should be as random as the session key.
func NewHandler(users *userstore.Store, accounts *accountstore.Store, sessionMgr *auth.SessionManager, clientID, clientSecret, baseURL, stateKey string, logger *zap.Logger) *Handler {
	return &Handler{
		Users:        users,
		Accounts:     accounts,
		SessionMgr:   sessionMgr,
		Errs:         webapi.NewErrorLogger(logger),
		Log:          logger,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  baseURL + "/auth/google/callback",
		stateCodec:   securecookie.New([]byte(stateKey), nil),
	}
}

// IsConfigured reports whether Google OAuth credentials are present.
func (h *Handler) IsConfigured() bool {
	return h.ClientID != "" && h.ClientSecret != ""
}

func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// oauthState is what survives the round trip through Google.
type oauthState struct {
	Nonce string `json:"nonce"`
	Role  string `json:"role,omitempty"`
}

// ServeLogin handles GET /auth/google. An optional ?role=startup or
// ?role=service_provider provisions a new account on first sign-in; without
// it only existing accounts can sign in.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if !h.IsConfigured() {
		webapi.Error(w, webapi.CodeInternal, "Google sign-in is not configured.")
		return
	}

	role := r.URL.Query().Get("role")
	if role != "" && !models.ValidRole(role) {
		webapi.Error(w, webapi.CodeValidation, "Role must be startup or service_provider.")
		return
	}

	nonce, err := generateNonce()
	if err != nil {
		h.Errs.Internal(w, r, "google login: generate state", err)
		return
	}

	state := oauthState{Nonce: nonce, Role: role}
	encoded, err := h.stateCodec.Encode(stateCookieName, state)
	if err != nil {
		h.Errs.Internal(w, r, "google login: encode state", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    encoded,
		Path:     "/auth/google",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	url := h.oauth2Config().AuthCodeURL(nonce, oauth2.AccessTypeOnline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// ServeCallback handles GET /auth/google/callback.
func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.Log.Warn("google oauth denied",
			zap.String("error", errParam),
			zap.String("description", r.URL.Query().Get("error_description")))
		webapi.Error(w, webapi.CodeInvalidCredentials, "Google sign-in was denied.")
		return
	}

	state, err := h.readState(r)
	if err != nil {
		h.Log.Warn("google oauth state invalid", zap.Error(err))
		webapi.Error(w, webapi.CodeInvalidCredentials, "Sign-in state is invalid or expired. Start over.")
		return
	}
	// State is single use.
	http.SetCookie(w, &http.Cookie{Name: stateCookieName, Path: "/auth/google", MaxAge: -1})

	code := r.URL.Query().Get("code")
	if code == "" {
		webapi.Error(w, webapi.CodeInvalidCredentials, "Missing authorization code.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	token, err := h.oauth2Config().Exchange(ctx, code)
	if err != nil {
		h.Log.Error("google oauth code exchange failed", zap.Error(err))
		webapi.Error(w, webapi.CodeInvalidCredentials, "Could not complete Google sign-in.")
		return
	}

	info, err := fetchGoogleUserInfo(ctx, token)
	if err != nil {
		h.Errs.Internal(w, r, "google callback: fetch user info", err)
		return
	}

	user, err := h.resolveUser(ctx, info, state.Role)
	if err != nil {
		if errors.Is(err, errNoAccount) {
			webapi.Error(w, webapi.CodeNotFound, "No account for this Google identity. Sign up first.")
			return
		}
		h.Errs.Internal(w, r, "google callback: resolve user", err)
		return
	}

	if err := h.SessionMgr.SignIn(w, r, user); err != nil {
		h.Errs.Internal(w, r, "google callback: save session", err)
		return
	}

	h.Log.Info("user signed in via google",
		zap.String("account_id", user.ID.Hex()),
		zap.String("role", user.Role))

	webapi.JSON(w, http.StatusOK, map[string]any{
		"account_id": user.ID.Hex(),
		"role":       user.Role,
	})
}

func (h *Handler) readState(r *http.Request) (oauthState, error) {
	var state oauthState

	c, err := r.Cookie(stateCookieName)
	if err != nil {
		return state, fmt.Errorf("state cookie missing: %w", err)
	}
	if err := h.stateCodec.Decode(stateCookieName, c.Value, &state); err != nil {
		return state, fmt.Errorf("state cookie invalid: %w", err)
	}
	if r.URL.Query().Get("state") != state.Nonce {
		return state, errors.New("state parameter does not match cookie")
	}
	return state, nil
}

var errNoAccount = errors.New("no account for google identity")

// resolveUser finds the account behind a Google identity: first by subject
// id, then by email (backfilling the subject id), finally provisioning a new
// account when a role hint was given.
func (h *Handler) resolveUser(ctx context.Context, info *googleUserInfo, role string) (*models.User, error) {
	user, err := h.Users.GetByProviderID(ctx, models.AuthProviderGoogle, info.ID)
	if err == nil {
		return user, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	user, err = h.Users.GetByEmail(ctx, info.Email)
	if err == nil {
		if user.AuthProvider != models.AuthProviderGoogle {
			// Local account with the same email; do not silently link.
			return nil, errNoAccount
		}
		if user.AuthProviderID == "" {
			if err := h.Users.SetAuthProviderID(ctx, user.ID, info.ID); err != nil {
				h.Log.Warn("backfill google subject id failed",
					zap.Error(err),
					zap.String("account_id", user.ID.Hex()))
			}
		}
		return user, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	if role == "" {
		return nil, errNoAccount
	}

	created, err := h.Accounts.CreateExternal(ctx, info.Email, role, models.AuthProviderGoogle, info.ID, info.Name)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// googleUserInfo is the subset of Google's userinfo payload we use.
type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}
	return &info, nil
}

func generateNonce() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
