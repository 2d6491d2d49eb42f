package identity

import (
	"github.com/gofiber/fiber/v2"
)

const localsKey = "identity"

// Attach stores the verified identity on the request.
func Attach(c *fiber.Ctx, id Identity) {
	c.Locals(localsKey, id)
}

// FromCtx returns the identity attached by the access gate.
func FromCtx(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(localsKey).(Identity)
	if !ok || id.UserID == "" {
		return Identity{}, false
	}
	return id, true
}

// UserID extracts the caller's user id, or "" on public routes.
func UserID(c *fiber.Ctx) string {
	id, _ := FromCtx(c)
	return id.UserID
}
