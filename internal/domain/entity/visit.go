package entity

import "time"

// Visit records a marketer dropping by a customer's shop.
type Visit struct {
	ID         string    `bson:"_id" json:"id"`
	CustomerID string    `bson:"customerId" json:"customerId"`
	MarketerID string    `bson:"marketerId" json:"marketerId"`
	VisitedAt  time.Time `bson:"visitedAt" json:"visitedAt"`
	Note       string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
