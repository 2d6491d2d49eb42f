package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/services"
)

type IntentHandler struct {
	intent *services.IntentService
}

func NewIntentHandler(intent *services.IntentService) *IntentHandler {
	return &IntentHandler{intent: intent}
}

func (h *IntentHandler) CreateSegment(c *fiber.Ctx) error {
	var req dto.CreateSegmentRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	seg, err := h.intent.CreateSegment(c.UserContext(), identity.UserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(seg)
}

func (h *IntentHandler) ListSegments(c *fiber.Ctx) error {
	p, err := listParams(c)
	if err != nil {
		return respondError(c, err)
	}
	rows, page, err := h.intent.ListSegments(c.UserContext(), identity.UserID(c), p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewPaginated(rows, page, "Audience segments retrieved successfully"))
}

func (h *IntentHandler) RecordSignal(c *fiber.Ctx) error {
	var req dto.IntentSignalRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	sig, err := h.intent.RecordSignal(c.UserContext(), identity.UserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sig)
}

func (h *IntentHandler) RecordTrust(c *fiber.Ctx) error {
	var req dto.TrustRelationshipRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	rel, err := h.intent.RecordTrust(c.UserContext(), identity.UserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rel)
}

func (h *IntentHandler) AlignmentScores(c *fiber.Ctx) error {
	p, err := listParams(c)
	if err != nil {
		return respondError(c, err)
	}
	var f dto.AlignmentFilter
	if err := parseQuery(c, &f); err != nil {
		return respondError(c, err)
	}
	rows, page, err := h.intent.AlignmentScores(c.UserContext(), p, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewPaginated(rows, page, "Buyer alignment scores retrieved successfully"))
}

func (h *IntentHandler) AudienceOverlap(c *fiber.Ctx) error {
	var req dto.AudienceOverlapRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	resp, err := h.intent.AudienceOverlap(c.UserContext(), identity.UserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *IntentHandler) TrustGraph(c *fiber.Ctx) error {
	resp, err := h.intent.TrustGraph(c.UserContext(), identity.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
