// internal/app/store/providers/providerstore.go
package providerstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/facilitiease/facilitiease/internal/domain/models"
)

// ErrNotFound is returned by updates that match no profile.
var ErrNotFound = errors.New("service provider profile not found")

// updatableFields is the closed set of profile fields a PATCH may touch.
var updatableFields = map[string]bool{
	"service_name":                 true,
	"primary_contact_number":       true,
	"primary_email":                true,
	"service_provider_type":        true,
	"address":                      true,
	"city":                         true,
	"state_province":               true,
	"zip_postal_code":              true,
	"primary_contact1_name":        true,
	"primary_contact1_designation": true,
	"contact2_name":                true,
	"contact2_designation":         true,
	"alternate_contact_number":     true,
	"alternate_email":              true,
	"logo_url":                     true,
	"website_url":                  true,
}

// Store reads and writes the service_providers collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("service_providers")}
}

// GetByUserID loads the profile owned by userID. A missing profile returns
// (nil, nil): absence is a normal state, not an error.
func (s *Store) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.ServiceProviderProfile, error) {
	var p models.ServiceProviderProfile
	err := s.c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update applies a $set patch to the profile owned by userID. Unknown fields
// are rejected; a patch that matches no profile returns ErrNotFound.
func (s *Store) Update(ctx context.Context, userID primitive.ObjectID, patch map[string]any) error {
	if len(patch) == 0 {
		return errors.New("empty patch")
	}

	set := bson.M{}
	for k, v := range patch {
		if !updatableFields[k] {
			return fmt.Errorf("unknown profile field %q", k)
		}
		set[k] = v
	}
	set["updated_at"] = time.Now()

	res, err := s.c.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
