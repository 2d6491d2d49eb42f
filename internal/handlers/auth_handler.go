package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id, _ := identity.FromCtx(c)
	return c.JSON(id)
}

func (h *AuthHandler) Detailed(c *fiber.Ctx) error {
	id, _ := identity.FromCtx(c)
	resp, err := h.authService.Detailed(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	id, _ := identity.FromCtx(c)
	var req dto.UpdateProfileRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	user, err := h.authService.UpdateProfile(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

func (h *AuthHandler) Permissions(c *fiber.Ctx) error {
	id, _ := identity.FromCtx(c)
	return c.JSON(h.authService.Permissions(id))
}

// Status is public. The gate attaches an identity only when the presented
// token verifies.
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	id, ok := identity.FromCtx(c)
	if !ok {
		return c.JSON(dto.AuthStatusResponse{Authenticated: false})
	}
	return c.JSON(dto.AuthStatusResponse{Authenticated: true, User: &id})
}
