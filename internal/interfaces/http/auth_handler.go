package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tamirban/tamirban-api/internal/application/auth"
	"github.com/tamirban/tamirban-api/internal/application/dto"
)

// AuthHandler HTTP endpoints for sign-in.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register POST /api/auth/register (admin only)
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	user, err := h.uc.RegisterUser(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login POST /api/auth/login (panel, email/password)
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// RequestOTP POST /api/auth/otp/request (mobile app)
func (h *AuthHandler) RequestOTP(c *fiber.Ctx) error {
	var in dto.OTPRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.RequestOTP(c.Context(), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"sent": true})
}

// VerifyOTP POST /api/auth/otp/verify
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var in dto.OTPVerifyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.VerifyOTP(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
