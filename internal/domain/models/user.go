// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user account can hold. The enum is closed but deliberately
// string-typed so new roles can be added without a schema migration.
const (
	RoleStartup         = "startup"
	RoleServiceProvider = "service_provider"
)

// Auth providers. Local accounts carry a password hash and a derived _id;
// external accounts use the provider's subject id as the source of truth.
const (
	AuthProviderLocal  = "local"
	AuthProviderGoogle = "google"
)

// User is one account. Exactly one User exists per email, enforced by the
// unique index on the users collection.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	PasswordHash   string             `bson:"password_hash,omitempty" json:"-"`
	Role           string             `bson:"role" json:"role"`
	AuthProvider   string             `bson:"auth_provider" json:"auth_provider"`
	AuthProviderID string             `bson:"auth_provider_id,omitempty" json:"auth_provider_id,omitempty"`
	EmailVerified  bool               `bson:"is_email_verified" json:"is_email_verified"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleStartup || role == RoleServiceProvider
}
