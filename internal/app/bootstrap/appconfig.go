// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, logging,
// environment); AppConfig is everything specific to FacilitiEase.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions
	SessionDomain string // Cookie domain (blank means current host)

	// File storage configuration
	StorageType      string // Storage backend: "local" or "s3"
	StorageLocalPath string // Local storage path (e.g., "./uploads/facilities")
	StorageLocalURL  string // URL prefix for serving local files (e.g., "/files")

	// S3 configuration (only used if StorageType is "s3")
	StorageS3Region string
	StorageS3Bucket string
	StorageS3Prefix string

	// Google OAuth configuration
	GoogleClientID     string
	GoogleClientSecret string
	OAuthStateKey      string // Signing key for the OAuth state cookie

	// Base URL for OAuth callbacks
	BaseURL string // e.g., "https://api.facilitiease.com"

	// Email verification settings
	EmailVerifyExpiry time.Duration

	// Rate limiting for signup and sign-in
	AuthRateLimit  int
	AuthRateWindow time.Duration
}
