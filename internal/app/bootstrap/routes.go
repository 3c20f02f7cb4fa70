// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	accountsfeature "github.com/facilitiease/facilitiease/internal/app/features/accounts"
	authgooglefeature "github.com/facilitiease/facilitiease/internal/app/features/authgoogle"
	facilitiesfeature "github.com/facilitiease/facilitiease/internal/app/features/facilities"
	healthfeature "github.com/facilitiease/facilitiease/internal/app/features/health"
	profilesfeature "github.com/facilitiease/facilitiease/internal/app/features/profiles"
	sessionsfeature "github.com/facilitiease/facilitiease/internal/app/features/sessions"
	uploadsfeature "github.com/facilitiease/facilitiease/internal/app/features/uploads"
	verifyemailfeature "github.com/facilitiease/facilitiease/internal/app/features/verifyemail"
	accountstore "github.com/facilitiease/facilitiease/internal/app/store/accounts"
	emailverifystore "github.com/facilitiease/facilitiease/internal/app/store/emailverify"
	facilitystore "github.com/facilitiease/facilitiease/internal/app/store/facilities"
	providerstore "github.com/facilitiease/facilitiease/internal/app/store/providers"
	startupstore "github.com/facilitiease/facilitiease/internal/app/store/startups"
	userstore "github.com/facilitiease/facilitiease/internal/app/store/users"
	"github.com/facilitiease/facilitiease/internal/app/system/auth"
	"github.com/facilitiease/facilitiease/internal/app/system/ratelimit"
	"github.com/facilitiease/facilitiease/internal/app/system/storage"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	db := deps.MongoDatabase
	users := userstore.New(db)
	accounts := accountstore.New(db)
	startups := startupstore.New(db)
	providers := providerstore.New(db)
	facilities := facilitystore.New(db)
	codes := emailverifystore.New(db, appCfg.EmailVerifyExpiry)

	authLimiter := ratelimit.New(appCfg.AuthRateLimit, appCfg.AuthRateWindow)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if signed in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Account provisioning
	accountsHandler := accountsfeature.NewHandler(accounts, authLimiter, logger)
	r.Mount("/accounts", accountsfeature.Routes(accountsHandler))

	// Sign in / sign out
	sessionsHandler := sessionsfeature.NewHandler(users, startups, providers, sessionMgr, authLimiter, logger)
	r.Mount("/sessions", sessionsfeature.Routes(sessionsHandler))

	// Role profiles
	profilesHandler := profilesfeature.NewHandler(startups, providers, logger)
	r.Mount("/profiles", profilesfeature.Routes(profilesHandler))

	// Facility submissions
	facilitiesHandler := facilitiesfeature.NewHandler(facilities, providers, logger)
	r.Mount("/facilities", facilitiesfeature.Routes(facilitiesHandler))

	// Image uploads
	uploadsHandler := uploadsfeature.NewHandler(deps.FileStore, logger)
	r.Mount("/uploads", uploadsfeature.Routes(uploadsHandler))

	// Email verification
	verifyHandler := verifyemailfeature.NewHandler(users, codes, nil, logger)
	r.Mount("/verifications", verifyemailfeature.Routes(verifyHandler))

	// Google OAuth sign-in
	googleHandler := authgooglefeature.NewHandler(users, accounts, sessionMgr,
		appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, appCfg.OAuthStateKey, logger)
	r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

	// Local storage backend: serve uploaded files from disk.
	if local, ok := deps.FileStore.(*storage.Local); ok {
		prefix := appCfg.StorageLocalURL
		r.Handle(prefix+"/*", fileserver.Handler(prefix, local.Root()))
	}

	return r, nil
}
