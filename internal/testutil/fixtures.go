// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/facilitiease/facilitiease/internal/app/system/credentials"
	"github.com/facilitiease/facilitiease/internal/app/system/identity"
	"github.com/facilitiease/facilitiease/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a local-auth user with the given role and password.
func (f *Fixtures) CreateUser(ctx context.Context, email, password, role string) models.User {
	f.t.Helper()

	hash, err := credentials.Hash(password)
	if err != nil {
		f.t.Fatalf("hash test password: %v", err)
	}

	now := time.Now().UTC()
	id := identity.DeriveID(email)
	user := models.User{
		ID:             id,
		Email:          email,
		PasswordHash:   hash,
		Role:           role,
		AuthProvider:   models.AuthProviderLocal,
		AuthProviderID: id.Hex(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("create test user: %v", err)
	}
	return user
}

// CreateStartupProfile inserts a startup profile seeded the way signup does:
// optional fields null.
func (f *Fixtures) CreateStartupProfile(ctx context.Context, userID primitive.ObjectID, name string) models.StartupProfile {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.StartupProfile{
		ID:            primitive.NewObjectID(),
		UserID:        userID,
		StartupName:   name,
		ContactName:   "Test Contact",
		ContactNumber: "5550100",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := f.db.Collection("startups").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("create test startup profile: %v", err)
	}
	return p
}

// CreateProviderProfile inserts a service provider profile seeded the way
// signup does: only the name, primary number, and primary email set.
func (f *Fixtures) CreateProviderProfile(ctx context.Context, userID primitive.ObjectID, serviceName, email string) models.ServiceProviderProfile {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.ServiceProviderProfile{
		ID:                   primitive.NewObjectID(),
		UserID:               userID,
		ServiceName:          serviceName,
		PrimaryContactNumber: "5550100",
		PrimaryEmail:         email,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if _, err := f.db.Collection("service_providers").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("create test provider profile: %v", err)
	}
	return p
}

// CompleteProviderProfile returns a patch that fills every nullable provider
// profile field, for completeness-flip scenarios.
func CompleteProviderProfile() map[string]*string {
	s := func(v string) *string { return &v }
	return map[string]*string{
		"service_provider_type":        s("wet-lab"),
		"address":                      s("42 Lab St"),
		"city":                         s("Pune"),
		"state_province":               s("MH"),
		"zip_postal_code":              s("411001"),
		"primary_contact1_name":        s("Asha Rao"),
		"primary_contact1_designation": s("Director"),
		"contact2_name":                s("Vikram Shah"),
		"contact2_designation":         s("Manager"),
		"alternate_contact_number":     s("5550101"),
		"alternate_email":              s("alt@provider.test"),
		"logo_url":                     s("https://cdn.test/logo.png"),
		"website_url":                  s("https://provider.test"),
	}
}
