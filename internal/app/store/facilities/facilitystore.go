// internal/app/store/facilities/facilitystore.go
package facilitystore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/facilitiease/facilitiease/internal/domain/models"
)

// Store reads and writes the facilities collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("facilities")}
}

// Create inserts a new listing for the given provider profile. The facility
// type must be a known category and details must carry every required key
// for that type. Status is always pending at creation regardless of input.
func (s *Store) Create(ctx context.Context, providerID primitive.ObjectID, facilityType string, details bson.M) (models.Facility, error) {
	spec, ok := models.FacilityTypeSpecs[facilityType]
	if !ok {
		return models.Facility{}, fmt.Errorf("unknown facility type %q", facilityType)
	}
	for _, key := range spec.RequiredKeys {
		if _, present := details[key]; !present {
			return models.Facility{}, fmt.Errorf("%s listing missing %q", spec.Label, key)
		}
	}

	now := time.Now()
	f := models.Facility{
		ID:                primitive.NewObjectID(),
		ServiceProviderID: providerID,
		FacilityType:      facilityType,
		Status:            models.FacilityStatusPending,
		Details:           details,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if _, err := s.c.InsertOne(ctx, f); err != nil {
		return models.Facility{}, err
	}
	return f, nil
}

// ListByProvider returns the provider's listings, newest first.
func (s *Store) ListByProvider(ctx context.Context, providerID primitive.ObjectID) ([]models.Facility, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"service_provider_id": providerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	facilities := []models.Facility{}
	if err := cur.All(ctx, &facilities); err != nil {
		return nil, err
	}
	return facilities, nil
}

// GetByID loads one listing.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Facility, error) {
	var f models.Facility
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}
