// internal/domain/models/serviceprovider.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceProviderProfile is the role profile attached 1:1 to a service
// provider User. Signup seeds only the name, primary contact number, and
// primary email; everything else stays null until the completion step.
type ServiceProviderProfile struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`

	ServiceName          string `bson:"service_name" json:"service_name"`
	PrimaryContactNumber string `bson:"primary_contact_number" json:"primary_contact_number"`
	PrimaryEmail         string `bson:"primary_email" json:"primary_email"`

	ServiceProviderType        *string `bson:"service_provider_type" json:"service_provider_type"`
	Address                    *string `bson:"address" json:"address"`
	City                       *string `bson:"city" json:"city"`
	StateProvince              *string `bson:"state_province" json:"state_province"`
	ZipPostalCode              *string `bson:"zip_postal_code" json:"zip_postal_code"`
	PrimaryContact1Name        *string `bson:"primary_contact1_name" json:"primary_contact1_name"`
	PrimaryContact1Designation *string `bson:"primary_contact1_designation" json:"primary_contact1_designation"`
	Contact2Name               *string `bson:"contact2_name" json:"contact2_name"`
	Contact2Designation        *string `bson:"contact2_designation" json:"contact2_designation"`
	AlternateContactNumber     *string `bson:"alternate_contact_number" json:"alternate_contact_number"`
	AlternateEmail             *string `bson:"alternate_email" json:"alternate_email"`
	LogoURL                    *string `bson:"logo_url" json:"logo_url"`
	WebsiteURL                 *string `bson:"website_url" json:"website_url"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Complete reports whether every field of the profile has a value.
// A nil receiver (profile never created) is not complete.
func (p *ServiceProviderProfile) Complete() bool {
	if p == nil {
		return false
	}
	if p.ServiceName == "" || p.PrimaryContactNumber == "" || p.PrimaryEmail == "" {
		return false
	}
	for _, f := range []*string{
		p.ServiceProviderType,
		p.Address,
		p.City,
		p.StateProvince,
		p.ZipPostalCode,
		p.PrimaryContact1Name,
		p.PrimaryContact1Designation,
		p.Contact2Name,
		p.Contact2Designation,
		p.AlternateContactNumber,
		p.AlternateEmail,
		p.LogoURL,
		p.WebsiteURL,
	} {
		if f == nil || *f == "" {
			return false
		}
	}
	return true
}
