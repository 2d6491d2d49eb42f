package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/identity"
)

// RequireIdentity rejects requests that reached a handler on a public path
// without a verified identity.
func RequireIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := identity.FromCtx(c); !ok {
			return unauthorized(c, "Authentication required")
		}
		return c.Next()
	}
}

// RequireRole admits the role and admin.
func RequireRole(role string) fiber.Handler {
	return guard(func(id identity.Identity) bool {
		return identity.HasRole(id, role)
	}, fmt.Sprintf("Role '%s' required", role))
}

// RequireTier admits the tier and every tier ranked above it.
func RequireTier(tier string) fiber.Handler {
	return guard(func(id identity.Identity) bool {
		return identity.HasTier(id, tier)
	}, fmt.Sprintf("Subscription tier '%s' required", tier))
}

func guard(allowed func(identity.Identity) bool, denial string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := identity.FromCtx(c)
		if !ok {
			return unauthorized(c, "Authentication required")
		}
		if !allowed(id) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: denial, Code: "FORBIDDEN",
			})
		}
		return c.Next()
	}
}
