package entity

import "time"

// User roles.
const (
	RoleAdmin    = "admin"
	RoleMarketer = "marketer"
)

// User is an account that can sign in: panel admins with a password,
// marketers through the mobile app with a phone OTP.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Phone        string    `bson:"phone" json:"phone"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	PasswordHash string    `bson:"passwordHash,omitempty" json:"-"`
	Role         string    `bson:"role" json:"role"`
	MarketerID   string    `bson:"marketerId,omitempty" json:"marketerId,omitempty"`
	Status       string    `bson:"status" json:"status"` // active | disabled
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
