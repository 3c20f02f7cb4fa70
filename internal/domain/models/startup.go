// internal/domain/models/startup.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StartupProfile is the role profile attached 1:1 to a startup User.
// Optional fields are pointers so "never provided" survives the round trip
// to Mongo as null rather than a zero value.
type StartupProfile struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"user_id" json:"user_id"`
	StartupName   string             `bson:"startup_name" json:"startup_name"`
	ContactName   string             `bson:"contact_name" json:"contact_name"`
	ContactNumber string             `bson:"contact_number" json:"contact_number"`
	Address       *string            `bson:"address" json:"address"`
	LogoURL       *string            `bson:"logo_url" json:"logo_url"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Complete reports whether every field of the profile has a value.
// A nil receiver (profile never created) is not complete.
func (p *StartupProfile) Complete() bool {
	if p == nil {
		return false
	}
	if p.StartupName == "" || p.ContactName == "" || p.ContactNumber == "" {
		return false
	}
	for _, f := range []*string{p.Address, p.LogoURL} {
		if f == nil || *f == "" {
			return false
		}
	}
	return true
}
