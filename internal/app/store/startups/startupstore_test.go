// internal/app/store/startups/startupstore_test.go
package startupstore

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/facilitiease/facilitiease/internal/domain/models"
	"github.com/facilitiease/facilitiease/internal/testutil"
)

func TestGetByUserIDAbsent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p, err := s.GetByUserID(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile for unknown user")
	}
	if p.Complete() {
		t.Fatal("absent profile must not be complete")
	}
}

func TestUpdateCompletesProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "startup@example.com", "secret123", models.RoleStartup)
	fx.CreateStartupProfile(ctx, u.ID, "Acme Labs")

	before, err := s.GetByUserID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if before.Complete() {
		t.Fatal("seeded profile must not be complete")
	}

	err = s.Update(ctx, u.ID, map[string]any{
		"address":  "1 Main St",
		"logo_url": "https://cdn.test/acme.png",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	after, err := s.GetByUserID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if !after.Complete() {
		t.Fatal("profile should be complete after all fields set")
	}
	if after.Address == nil || *after.Address != "1 Main St" {
		t.Fatalf("address not updated: %v", after.Address)
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Fatal("updated_at not advanced")
	}
}

func TestUpdateUnknownUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := s.Update(ctx, primitive.NewObjectID(), map[string]any{"address": "x"})
	if err != ErrNotFound {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestUpdateRejectsUnknownField(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "strict@example.com", "secret123", models.RoleStartup)
	fx.CreateStartupProfile(ctx, u.ID, "Strict Inc")

	if err := s.Update(ctx, u.ID, map[string]any{"$set": "evil"}); err == nil {
		t.Fatal("expected operator-shaped field to be rejected")
	}
	if err := s.Update(ctx, u.ID, map[string]any{"role": "service_provider"}); err == nil {
		t.Fatal("expected out-of-schema field to be rejected")
	}
	if err := s.Update(ctx, u.ID, map[string]any{}); err == nil {
		t.Fatal("expected empty patch to be rejected")
	}
}
