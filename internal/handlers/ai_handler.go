package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/services"
)

type AIHandler struct {
	ai *services.AIService
}

func NewAIHandler(ai *services.AIService) *AIHandler {
	return &AIHandler{ai: ai}
}

// Generate never fails once the request validates; provider errors fall back
// to a template.
func (h *AIHandler) Generate(c *fiber.Ctx) error {
	var req dto.AIGenerationRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.ai.Generate(c.UserContext(), &req))
}

func (h *AIHandler) Fallback(c *fiber.Ctx) error {
	var req dto.AIGenerationRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(services.FallbackMessage(&req))
}
