// internal/domain/models/facility.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Facility listing statuses. A facility is created as pending; the approval
// workflow that moves it to approved/rejected lives outside this service.
const (
	FacilityStatusPending  = "pending"
	FacilityStatusApproved = "approved"
	FacilityStatusRejected = "rejected"
)

// Facility is one listing submitted by a service provider.
// Details holds the type-specific payload validated against the
// FacilityTypes table before insert.
type Facility struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ServiceProviderID primitive.ObjectID `bson:"service_provider_id" json:"service_provider_id"`
	FacilityType      string             `bson:"facility_type" json:"facility_type"`
	Status            string             `bson:"status" json:"status"`
	Details           bson.M             `bson:"details" json:"details"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
