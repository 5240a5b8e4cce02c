package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// RequireAuthenticated accepts any valid bearer token regardless of role.
func RequireAuthenticated(c *fiber.Ctx) error {
	if _, err := authenticate(c); err != nil {
		return err
	}
	return c.Next()
}

// RequireRole returns a gate that lets the request through only when the
// token's role claim equals requiredRole.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := authenticate(c)
		if err != nil {
			return err
		}

		if identity.Role != requiredRole {
			log.Printf("User %d with role %q denied %s %s (requires %q)", identity.UserID, identity.Role, c.Method(), c.Path(), requiredRole)
			return ForbiddenError("Access forbidden: insufficient permissions")
		}

		return c.Next()
	}
}
