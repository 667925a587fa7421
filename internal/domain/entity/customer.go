package entity

import "time"

// Customer statuses used across the CRM.
const (
	CustomerStatusActive    = "ACTIVE"
	CustomerStatusInactive  = "INACTIVE"
	CustomerStatusPending   = "PENDING"
	CustomerStatusAtRisk    = "AT_RISK"
	CustomerStatusLoyal     = "LOYAL"
	CustomerStatusSuspended = "SUSPENDED"
)

// ValidCustomerStatus reports whether s is a known customer status.
func ValidCustomerStatus(s string) bool {
	switch s {
	case CustomerStatusActive, CustomerStatusInactive, CustomerStatusPending,
		CustomerStatusAtRisk, CustomerStatusLoyal, CustomerStatusSuspended:
		return true
	}
	return false
}

// GeoLocation is the recorded position of a repair shop. When present, both
// Latitude and Longitude are finite; a customer is eligible for nearby search
// only under that invariant.
type GeoLocation struct {
	Latitude    float64 `bson:"latitude" json:"latitude"`
	Longitude   float64 `bson:"longitude" json:"longitude"`
	AddressLine string  `bson:"addressLine,omitempty" json:"addressLine,omitempty"`
	City        string  `bson:"city,omitempty" json:"city,omitempty"`
	Province    string  `bson:"province,omitempty" json:"province,omitempty"`
}

// Customer is a repair shop in the TamirBan network.
type Customer struct {
	ID                 string       `bson:"_id" json:"id"`
	Name               string       `bson:"name" json:"name"`
	Code               string       `bson:"code,omitempty" json:"code,omitempty"`
	Phones             []string     `bson:"phones,omitempty" json:"phones,omitempty"`
	Email              string       `bson:"email,omitempty" json:"email,omitempty"`
	City               string       `bson:"city,omitempty" json:"city,omitempty"`
	Province           string       `bson:"province,omitempty" json:"province,omitempty"`
	Status             string       `bson:"status" json:"status"`
	Tags               []string     `bson:"tags,omitempty" json:"tags,omitempty"`
	GeoLocation        *GeoLocation `bson:"geoLocation,omitempty" json:"geoLocation,omitempty"`
	AssignedMarketerID string       `bson:"assignedMarketerId,omitempty" json:"assignedMarketerId,omitempty"`
	MonthlyRevenue     int64        `bson:"monthlyRevenue,omitempty" json:"monthlyRevenue,omitempty"`
	LastVisitAt        *time.Time   `bson:"lastVisitAt,omitempty" json:"lastVisitAt,omitempty"`
	Grade              string       `bson:"grade,omitempty" json:"grade,omitempty"` // A | B | C | D

	// SearchText is the folded concatenation of name, code, phones and email,
	// maintained on every write so the store can run substring search without
	// caring about Arabic/Persian letter variants. Never exposed to clients.
	SearchText string `bson:"searchText,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasGeoLocation reports whether the customer can appear in nearby search.
func (c *Customer) HasGeoLocation() bool {
	return c.GeoLocation != nil
}
