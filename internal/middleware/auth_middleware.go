package middleware

import (
	"strings"

	"go-retail-crm/pkg/config"
	"go-retail-crm/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireSession validates the session token and sets user info in context.
// The token is only ever issued by the stub login flow, so this gates
// accidental anonymous access, not real adversaries.
func RequireSession(jwtCfg config.JWTConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(jwtCfg, parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		// Set user info in context for downstream handlers
		c.Locals("user_id", claims.UserID)
		c.Locals("user_email", claims.Email)
		c.Locals("user_name", claims.Name)
		c.Locals("user_role", claims.Role)

		return c.Next()
	}
}
