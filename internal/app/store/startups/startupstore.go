// internal/app/store/startups/startupstore.go
package startupstore

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
var ErrNotFound = errors.New("startup profile not found")

// updatableFields is the closed set of profile fields a PATCH may touch.
// Everything else in a patch is rejected before it reaches Mongo.
var updatableFields = map[string]bool{
	"startup_name":   true,
	"contact_name":   true,
	"contact_number": true,
	"address":        true,
	"logo_url":       true,
}

// Store reads and writes the startups collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("startups")}
}

// GetByUserID loads the profile owned by userID. A missing profile returns
// (nil, nil): absence is a normal state, not an error.
func (s *Store) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.StartupProfile, error) {
	var p models.StartupProfile
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
