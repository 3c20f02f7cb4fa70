// internal/app/store/facilities/facilitystore_test.go
package facilitystore

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/facilitiease/facilitiease/internal/domain/models"
	"github.com/facilitiease/facilitiease/internal/testutil"
)

func coworkingDetails() bson.M {
	return bson.M{
		"totalSeats":     40,
		"availableSeats": 12,
		"rentalPlans":    []bson.M{{"name": "monthly", "price": 4500}},
		"images":         []string{"https://cdn.test/space.jpg"},
	}
}

func TestCreateForcesPendingStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	providerID := primitive.NewObjectID()
	f, err := s.Create(ctx, providerID, models.FacilityTypeCoworkingSpace, coworkingDetails())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if f.Status != models.FacilityStatusPending {
		t.Fatalf("got status %q, want pending", f.Status)
	}
	if f.ServiceProviderID != providerID {
		t.Fatal("provider id not stored")
	}

	got, err := s.GetByID(ctx, f.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != models.FacilityStatusPending {
		t.Fatalf("persisted status %q, want pending", got.Status)
	}
	if got.FacilityType != models.FacilityTypeCoworkingSpace {
		t.Fatalf("persisted type %q", got.FacilityType)
	}
}

func TestCreateUnknownType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := s.Create(ctx, primitive.NewObjectID(), "parking-lot", bson.M{"images": []string{}})
	if err == nil {
		t.Fatal("expected unknown type to be rejected")
	}
}

func TestCreateMissingRequiredKey(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	details := coworkingDetails()
	delete(details, "rentalPlans")
	_, err := s.Create(ctx, primitive.NewObjectID(), models.FacilityTypeCoworkingSpace, details)
	if err == nil {
		t.Fatal("expected missing rentalPlans to be rejected")
	}
}

func TestEveryTypeAcceptsItsRequiredKeys(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	providerID := primitive.NewObjectID()
	for id, spec := range models.FacilityTypeSpecs {
		details := bson.M{}
		for _, key := range spec.RequiredKeys {
			details[key] = "set"
		}
		if _, err := s.Create(ctx, providerID, id, details); err != nil {
			t.Errorf("%s: %v", id, err)
		}
	}

	all, err := s.ListByProvider(ctx, providerID)
	if err != nil {
		t.Fatalf("ListByProvider: %v", err)
	}
	if len(all) != len(models.FacilityTypeSpecs) {
		t.Fatalf("got %d facilities, want %d", len(all), len(models.FacilityTypeSpecs))
	}
}

func TestListByProviderScopedAndOrdered(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	mine := primitive.NewObjectID()
	other := primitive.NewObjectID()

	first, err := s.Create(ctx, mine, models.FacilityTypeCoworkingSpace, coworkingDetails())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// created_at is stored at millisecond precision; keep the orderings apart.
	time.Sleep(5 * time.Millisecond)
	second, err := s.Create(ctx, mine, models.FacilityTypeMeetingRoom, bson.M{
		"conferenceRooms": 2, "trainingRooms": 1, "rentalPlans": []bson.M{}, "images": []string{},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Create(ctx, other, models.FacilityTypeCoworkingSpace, coworkingDetails()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := s.ListByProvider(ctx, mine)
	if err != nil {
		t.Fatalf("ListByProvider: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d facilities, want 2", len(got))
	}
	if got[0].ID != second.ID || got[1].ID != first.ID {
		t.Fatal("listings not newest first")
	}

	none, err := s.ListByProvider(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("ListByProvider: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("got %d facilities for unknown provider, want 0", len(none))
	}
}
