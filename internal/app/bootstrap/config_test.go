// internal/app/bootstrap/config_test.go
package bootstrap

import (
	"testing"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:         "mongodb://localhost:27017",
		MongoDatabase:    "facilitiease",
		SessionKey:       "a-strong-session-key-0123456789ABCDEF",
		SessionName:      "facilitiease-session",
		StorageType:      "local",
		StorageLocalPath: "./uploads/facilities",
		StorageLocalURL:  "/files",
		AuthRateLimit:    10,
		AuthRateWindow:   time.Minute,
	}
}

func TestValidateConfigAccepts(t *testing.T) {
	coreCfg := &config.CoreConfig{Env: "dev"}
	if err := ValidateConfig(coreCfg, validAppConfig(), zap.NewNop()); err != nil {
		t.Fatalf("ValidateConfig: %v", err)
	}
}

func TestValidateConfigRejects(t *testing.T) {
	cases := []struct {
		name   string
		env    string
		mutate func(*AppConfig)
	}{
		{"unknown storage type", "dev", func(c *AppConfig) { c.StorageType = "ftp" }},
		{"local without path", "dev", func(c *AppConfig) { c.StorageLocalPath = "" }},
		{"s3 without bucket", "dev", func(c *AppConfig) {
			c.StorageType = "s3"
			c.StorageS3Region = "us-east-1"
			c.StorageS3Bucket = ""
		}},
		{"dev session key in prod", "prod", func(c *AppConfig) {
			c.SessionKey = "dev-only-change-me-please-0123456789ABCDEF"
		}},
		{"zero rate limit", "dev", func(c *AppConfig) { c.AuthRateLimit = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validAppConfig()
			tc.mutate(&cfg)
			coreCfg := &config.CoreConfig{Env: tc.env}
			if err := ValidateConfig(coreCfg, cfg, zap.NewNop()); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
