// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/facilitiease/facilitiease/internal/app/system/normalize"
	"github.com/facilitiease/facilitiease/internal/domain/models"
)

// Store reads and writes the users collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateEmail is returned when a user with this email already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	errBadRole        = errors.New(`role must be "startup"|"service_provider"`)
)

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by normalized email.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmailAndRole looks up a user by normalized email holding the given
// role. Used by role-scoped sign-in so a startup account cannot sign in
// through the provider door.
func (s *Store) GetByEmailAndRole(ctx context.Context, email, role string) (*models.User, error) {
	var u models.User
	filter := bson.M{"email": normalize.Email(email), "role": normalize.Role(role)}
	if err := s.c.FindOne(ctx, filter).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByProviderID looks up a user by external auth provider and subject id.
func (s *Store) GetByProviderID(ctx context.Context, provider, providerID string) (*models.User, error) {
	var u models.User
	filter := bson.M{
		"auth_provider":    normalize.AuthProvider(provider),
		"auth_provider_id": providerID,
	}
	if err := s.c.FindOne(ctx, filter).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// SetAuthProviderID backfills the provider subject id on a user first matched
// by email.
func (s *Store) SetAuthProviderID(ctx context.Context, id primitive.ObjectID, providerID string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"auth_provider_id": providerID,
		"updated_at":       time.Now(),
	}})
	return err
}

// EmailExists reports whether any user holds this email.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}

// Insert writes a new user after normalizing and validating fields.
// The caller supplies the ID (derived for local auth, provider-assigned
// otherwise). The unique email index turns concurrent duplicates into
// ErrDuplicateEmail.
func (s *Store) Insert(ctx context.Context, u models.User) (models.User, error) {
	u.Email = normalize.Email(u.Email)
	u.Role = normalize.Role(u.Role)
	u.AuthProvider = normalize.AuthProvider(u.AuthProvider)

	if !models.ValidRole(u.Role) {
		return models.User{}, errBadRole
	}

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// Delete removes a user by ID. Used as the compensating write when the
// account-creation fallback path fails after the user insert.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// MarkEmailVerified sets is_email_verified on the user.
func (s *Store) MarkEmailVerified(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"is_email_verified": true,
		"updated_at":        time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
