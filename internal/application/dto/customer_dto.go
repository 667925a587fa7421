package dto

import "github.com/tamirban/tamirban-api/internal/domain/entity"

// NearbyLocation switches customer listing to nearby mode: only customers
// with a recorded geoLocation, filtered by distance from this point and
// sorted nearest first.
type NearbyLocation struct {
	Latitude    float64 `json:"latitude" query:"lat"`
	Longitude   float64 `json:"longitude" query:"lng"`
	MaxDistance float64 `json:"maxDistance,omitempty" query:"maxDistance"` // meters; 0 means the 10km default
}

// CustomerListFilters are the supported customer list criteria. All optional;
// they combine with AND except Search, which matches OR-wise across name,
// code, phones and email.
type CustomerListFilters struct {
	Status     string   `query:"status"`
	MarketerID string   `query:"marketerId"`
	City       string   `query:"city"`
	Search     string   `query:"search"`
	Tags       []string `query:"tags"`
	Nearby     *NearbyLocation
	PageRequest
}

// CustomerListResult is the list envelope returned to handlers.
type CustomerListResult struct {
	Data  []*entity.Customer `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// CreateCustomerRequest body for POST /api/customers.
type CreateCustomerRequest struct {
	Name               string              `json:"name"`
	Code               string              `json:"code,omitempty"`
	Phones             []string            `json:"phones,omitempty"`
	Email              string              `json:"email,omitempty"`
	City               string              `json:"city,omitempty"`
	Province           string              `json:"province,omitempty"`
	Status             string              `json:"status,omitempty"` // default ACTIVE
	Tags               []string            `json:"tags,omitempty"`
	GeoLocation        *entity.GeoLocation `json:"geoLocation,omitempty"`
	AssignedMarketerID string              `json:"assignedMarketerId,omitempty"`
	MonthlyRevenue     int64               `json:"monthlyRevenue,omitempty"`
	Grade              string              `json:"grade,omitempty"`
}

// UpdateCustomerRequest body for PUT /api/customers/:id. Pointer fields keep
// partial-update semantics: nil means "leave as is".
type UpdateCustomerRequest struct {
	Name               *string             `json:"name,omitempty"`
	Code               *string             `json:"code,omitempty"`
	Phones             *[]string           `json:"phones,omitempty"`
	Email              *string             `json:"email,omitempty"`
	City               *string             `json:"city,omitempty"`
	Province           *string             `json:"province,omitempty"`
	Status             *string             `json:"status,omitempty"`
	Tags               *[]string           `json:"tags,omitempty"`
	GeoLocation        *entity.GeoLocation `json:"geoLocation,omitempty"`
	AssignedMarketerID *string             `json:"assignedMarketerId,omitempty"`
	MonthlyRevenue     *int64              `json:"monthlyRevenue,omitempty"`
	Grade              *string             `json:"grade,omitempty"`
}
