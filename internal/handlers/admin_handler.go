package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/services"
)

type AdminHandler struct {
	admin *services.AdminService
}

func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) Analytics(c *fiber.Ctx) error {
	resp, err := h.admin.Analytics(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *AdminHandler) Users(c *fiber.Ctx) error {
	p, err := listParams(c)
	if err != nil {
		return respondError(c, err)
	}
	var f dto.UserAnalyticsFilter
	if err := parseQuery(c, &f); err != nil {
		return respondError(c, err)
	}
	rows, page, err := h.admin.UserAnalytics(c.UserContext(), p, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewPaginated(rows, page, "User analytics retrieved successfully"))
}

func (h *AdminHandler) StatusDistribution(c *fiber.Ctx) error {
	rows, err := h.admin.StatusDistribution(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status_distribution": rows})
}
