// internal/app/store/accounts/accountstore.go
package accountstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/facilitiease/facilitiease/internal/app/system/credentials"
	"github.com/facilitiease/facilitiease/internal/app/system/identity"
	"github.com/facilitiease/facilitiease/internal/app/system/normalize"
	"github.com/facilitiease/facilitiease/internal/app/system/txn"
	"github.com/facilitiease/facilitiease/internal/domain/models"
)

// ErrAlreadyExists is returned when an account with this email exists,
// whether caught by the pre-check or by the unique index at insert.
var ErrAlreadyExists = errors.New("an account with this email already exists")

// Store creates accounts: a user document plus its role profile, written
// together or not at all.
type Store struct {
	users     *mongo.Collection
	startups  *mongo.Collection
	providers *mongo.Collection
	client    *mongo.Client

	// profileInsertErr, when set, replaces the profile insert. Tests use it
	// to prove the user insert is rolled back or compensated.
	profileInsertErr error

	// skipExistsCheck, when set, bypasses the pre-insert email lookup so the
	// unique index arbitrates. Tests use it to drive the insert-time
	// duplicate path that two concurrent signups race into.
	skipExistsCheck bool
}

func New(db *mongo.Database) *Store {
	return &Store{
		users:     db.Collection("users"),
		startups:  db.Collection("startups"),
		providers: db.Collection("service_providers"),
		client:    db.Client(),
	}
}

// NewAccount carries everything signup collects. Role selects which seed
// fields are used; the rest are ignored.
type NewAccount struct {
	Email    string
	Password string
	Role     string

	// Startup seed.
	StartupName   string
	ContactName   string
	ContactNumber string

	// Service provider seed.
	ServiceName          string
	PrimaryContactNumber string
}

// Create provisions a local-auth account. The user _id is derived from the
// email, the password is bcrypt-hashed, and the role profile is seeded with
// its optional fields null. The two inserts run in a transaction where the
// deployment supports one; on standalone Mongo the user insert is compensated
// with a delete if the profile insert fails.
func (s *Store) Create(ctx context.Context, in NewAccount) (models.User, error) {
	email := normalize.Email(in.Email)
	role := normalize.Role(in.Role)

	if !s.skipExistsCheck {
		err := s.users.FindOne(ctx, bson.M{"email": email}).Err()
		if err == nil {
			return models.User{}, ErrAlreadyExists
		}
		if err != mongo.ErrNoDocuments {
			return models.User{}, err
		}
	}

	hash, err := credentials.Hash(in.Password)
	if err != nil {
		return models.User{}, err
	}

	now := time.Now()
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

	err = txn.Run(ctx, s.client, func(ctx context.Context) error {
		return s.insertPair(ctx, user, in, now)
	})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrAlreadyExists
		}
		return models.User{}, err
	}
	return user, nil
}

// insertPair writes the user and its role profile under the given context.
// When the context carries a transaction session both writes commit together;
// otherwise a failed profile insert deletes the user it just created.
func (s *Store) insertPair(ctx context.Context, user models.User, in NewAccount, now time.Time) error {
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return err
	}

	err := s.profileInsertErr
	if err == nil {
		err = s.insertProfile(ctx, user, in, now)
	}
	if err != nil {
		if !txn.InTransaction(ctx) {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_, _ = s.users.DeleteOne(dctx, bson.M{"_id": user.ID})
		}
		return err
	}
	return nil
}

func (s *Store) insertProfile(ctx context.Context, user models.User, in NewAccount, now time.Time) error {
	switch user.Role {
	case models.RoleStartup:
		p := models.StartupProfile{
			ID:            primitive.NewObjectID(),
			UserID:        user.ID,
			StartupName:   normalize.Name(in.StartupName),
			ContactName:   normalize.Name(in.ContactName),
			ContactNumber: normalize.Phone(in.ContactNumber),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		_, err := s.startups.InsertOne(ctx, p)
		return err
	case models.RoleServiceProvider:
		p := models.ServiceProviderProfile{
			ID:                   primitive.NewObjectID(),
			UserID:               user.ID,
			ServiceName:          normalize.Name(in.ServiceName),
			PrimaryContactNumber: normalize.Phone(in.PrimaryContactNumber),
			PrimaryEmail:         user.Email,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		_, err := s.providers.InsertOne(ctx, p)
		return err
	default:
		return errors.New("unknown role: " + user.Role)
	}
}

// CreateExternal provisions an account whose identity comes from an external
// auth provider. The _id is freshly allocated and no password hash is stored.
func (s *Store) CreateExternal(ctx context.Context, email, role, provider, providerID, displayName string) (models.User, error) {
	in := NewAccount{
		Email:         email,
		Role:          role,
		StartupName:   displayName,
		ContactName:   displayName,
		ServiceName:   displayName,
		ContactNumber: "",
	}

	email = normalize.Email(email)

	err := s.users.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return models.User{}, ErrAlreadyExists
	}
	if err != mongo.ErrNoDocuments {
		return models.User{}, err
	}

	now := time.Now()
	user := models.User{
		ID:             primitive.NewObjectID(),
		Email:          email,
		Role:           normalize.Role(role),
		AuthProvider:   normalize.AuthProvider(provider),
		AuthProviderID: providerID,
		EmailVerified:  true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = txn.Run(ctx, s.client, func(ctx context.Context) error {
		return s.insertPair(ctx, user, in, now)
	})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrAlreadyExists
		}
		return models.User{}, err
	}
	return user, nil
}
