// internal/domain/models/emailverification.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmailVerification is one outstanding verification code for a user. At most
// one document exists per user; reissuing replaces the code. Expired
// documents are reaped by the TTL index on expires_at.
type EmailVerification struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"user_id"`
	Email       string             `bson:"email"`
	CodeHash    string             `bson:"code_hash"`
	ExpiresAt   time.Time          `bson:"expires_at"`
	Attempts    int                `bson:"attempts"`
	ResendCount int                `bson:"resend_count"`
	WindowStart time.Time          `bson:"window_start"`
	CreatedAt   time.Time          `bson:"created_at"`
}
