package dto

import "github.com/tamirban/tamirban-api/internal/domain/entity"

// LoginRequest body for POST /api/auth/login (panel, password).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token plus the signed-in user.
type LoginResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// OTPRequest body for POST /api/auth/otp/request (mobile app).
type OTPRequest struct {
	Phone string `json:"phone"`
}

// OTPVerifyRequest body for POST /api/auth/otp/verify.
type OTPVerifyRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// RegisterRequest body for POST /api/auth/register (panel admin creates accounts).
type RegisterRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
	Password   string `json:"password,omitempty"` // required for admin role
	Role       string `json:"role,omitempty"`     // default marketer
	MarketerID string `json:"marketerId,omitempty"`
}
