// internal/domain/models/facilitytypes.go
package models

// Canonical facility type identifiers.
//
// These values are stored in the database in the Facility.FacilityType field
// and are used throughout the application as stable keys. Human-facing labels
// come from FacilityTypeSpecs.
const (
	FacilityTypeIndividualCabin = "individual-cabin"
	FacilityTypeCoworkingSpace  = "coworking-space"
	FacilityTypeMeetingRoom     = "meeting-room"
	FacilityTypeBioFacilities   = "bio-facilities"
	FacilityTypeManufacturing   = "manufacturing"
	FacilityTypePrototyping     = "prototyping"
	FacilityTypeSaasLabs        = "saas-labs"
	FacilityTypeSoftware        = "software"
	FacilityTypeRawOffice       = "raw-office"
	FacilityTypeRawLab          = "raw-lab"
)

// FacilityTypeSpec describes one submission category: the label shown to
// clients and the top-level keys the details payload must carry. A single
// table here replaces per-type submission code paths.
type FacilityTypeSpec struct {
	Label        string
	RequiredKeys []string
}

// FacilityTypeSpecs is the full set of allowed facility types.
//
// This map is the single source of truth for validation. Any new category
// must be added here to be accepted by the facilities endpoint.
var FacilityTypeSpecs = map[string]FacilityTypeSpec{
	FacilityTypeIndividualCabin: {
		Label:        "Individual Cabin",
		RequiredKeys: []string{"totalCabins", "availableCabins", "rentalPlans", "images"},
	},
	FacilityTypeCoworkingSpace: {
		Label:        "Coworking Spaces",
		RequiredKeys: []string{"totalSeats", "availableSeats", "rentalPlans", "images"},
	},
	FacilityTypeMeetingRoom: {
		Label:        "Meeting/Board Rooms",
		RequiredKeys: []string{"conferenceRooms", "trainingRooms", "rentalPlans", "images"},
	},
	FacilityTypeBioFacilities: {
		Label:        "Bio Allied Facilities",
		RequiredKeys: []string{"equipment", "subscriptionPlans", "images"},
	},
	FacilityTypeManufacturing: {
		Label:        "Manufacturing Facilities",
		RequiredKeys: []string{"equipment", "subscriptionPlans", "images"},
	},
	FacilityTypePrototyping: {
		Label:        "Prototyping Labs",
		RequiredKeys: []string{"equipment", "subscriptionPlans", "images"},
	},
	FacilityTypeSaasLabs: {
		Label:        "SAAS Labs and Facilities",
		RequiredKeys: []string{"equipment", "subscriptionPlans", "images"},
	},
	FacilityTypeSoftware: {
		Label:        "Specialized Softwares",
		RequiredKeys: []string{"software", "subscriptionPlans", "images"},
	},
	FacilityTypeRawOffice: {
		Label:        "Raw Space-Office Setup",
		RequiredKeys: []string{"areaDetails", "subscriptionPlans", "images"},
	},
	FacilityTypeRawLab: {
		Label:        "Raw Space-Lab Setup",
		RequiredKeys: []string{"areaDetails", "subscriptionPlans", "images"},
	},
}

// ValidFacilityType reports whether id is a known facility type.
func ValidFacilityType(id string) bool {
	_, ok := FacilityTypeSpecs[id]
	return ok
}
