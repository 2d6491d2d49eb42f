package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/services"
)

type savedLister func(ctx context.Context, userID string, p listquery.Params, f dto.SavedFilter) ([]models.SavedInfluencer, listquery.Page, error)

// InfluencerHandler serves the public directory and the caller's saved list.
type InfluencerHandler struct {
	influencers *services.InfluencerService
	saved       *services.SavedInfluencerService
}

func NewInfluencerHandler(influencers *services.InfluencerService, saved *services.SavedInfluencerService) *InfluencerHandler {
	return &InfluencerHandler{influencers: influencers, saved: saved}
}

func (h *InfluencerHandler) List(c *fiber.Ctx) error {
	p, err := listParams(c)
	if err != nil {
		return respondError(c, err)
	}
	var f dto.InfluencerFilter
	if err := parseQuery(c, &f); err != nil {
		return respondError(c, err)
	}

	rows, page, err := h.influencers.List(c.UserContext(), p, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewPaginated(rows, page, "Influencers retrieved successfully"))
}

func (h *InfluencerHandler) Get(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	inf, err := h.influencers.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inf)
}

func (h *InfluencerHandler) AdminCreate(c *fiber.Ctx) error {
	var req dto.CreateInfluencerRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	resp, err := h.influencers.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *InfluencerHandler) MyList(c *fiber.Ctx) error {
	return h.listSaved(c, h.saved.List)
}

func (h *InfluencerHandler) CRM(c *fiber.Ctx) error {
	return h.listSaved(c, h.saved.CRM)
}

func (h *InfluencerHandler) listSaved(c *fiber.Ctx, list savedLister) error {
	p, err := listParams(c)
	if err != nil {
		return respondError(c, err)
	}
	var f dto.SavedFilter
	if err := parseQuery(c, &f); err != nil {
		return respondError(c, err)
	}

	rows, page, err := list(c.UserContext(), identity.UserID(c), p, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewPaginated(rows, page, "Saved influencers retrieved successfully"))
}

func (h *InfluencerHandler) AddToList(c *fiber.Ctx) error {
	var req dto.SaveInfluencerRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	saved, err := h.saved.Add(c.UserContext(), identity.UserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *InfluencerHandler) Remove(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.saved.Remove(c.UserContext(), identity.UserID(c), id); err != nil {
		return respondError(c, err)
	}
	return deleted(c, "Influencer removed from your list")
}

func (h *InfluencerHandler) UpdateSaved(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateSavedInfluencerRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	saved, err := h.saved.Update(c.UserContext(), identity.UserID(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(saved)
}

func (h *InfluencerHandler) CheckSaved(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.saved.Check(c.UserContext(), identity.UserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func (h *InfluencerHandler) Relationship(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var q dto.RelationshipQuery
	if err := parseQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	saved, err := h.saved.SetRelationshipStrength(c.UserContext(), identity.UserID(c), id, *q.Strength)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(saved)
}

func (h *InfluencerHandler) FollowUp(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var q dto.FollowUpQuery
	if err := parseQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	// The validator already enforced the layout.
	at, _ := time.Parse(time.RFC3339, q.FollowUpDate)

	saved, err := h.saved.SetFollowUp(c.UserContext(), identity.UserID(c), id, at)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(saved)
}
