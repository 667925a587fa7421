package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tamirban/tamirban-api/internal/application/dto"
	"github.com/tamirban/tamirban-api/internal/domain/entity"
	"github.com/tamirban/tamirban-api/pkg/jwt"
)

// Locals keys set by the auth middleware.
const (
	LocalUserID     = "user_id"
	LocalRole       = "role"
	LocalMarketerID = "marketer_id"
)

// AuthMiddleware validates the Bearer token and stores the claims in c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "expected: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		userID, role, marketerID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		c.Locals(LocalMarketerID, marketerID)
		return c.Next()
	}
}

// RequireAdmin rejects non-admin tokens. Must run after AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "admin role required"})
		}
		return c.Next()
	}
}

// GetUserID returns the authenticated user's id from the context.
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetRole returns the authenticated user's role from the context.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

// GetMarketerID returns the marketer id bound to the token, if any.
func GetMarketerID(c *fiber.Ctx) string {
	return localString(c, LocalMarketerID)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
