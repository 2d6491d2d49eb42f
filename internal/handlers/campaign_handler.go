package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/services"
)

type CampaignHandler struct {
	campaigns *services.CampaignService
}

func NewCampaignHandler(campaigns *services.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns}
}

func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	campaign, err := h.campaigns.Create(c.UserContext(), identity.UserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(campaign)
}

func (h *CampaignHandler) List(c *fiber.Ctx) error {
	p, err := listParams(c)
	if err != nil {
		return respondError(c, err)
	}
	var f dto.CampaignFilter
	if err := parseQuery(c, &f); err != nil {
		return respondError(c, err)
	}

	rows, page, err := h.campaigns.List(c.UserContext(), identity.UserID(c), p, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewPaginated(rows, page, "Campaigns retrieved successfully"))
}

func (h *CampaignHandler) Get(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	campaign, err := h.campaigns.Get(c.UserContext(), identity.UserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(campaign)
}

func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateCampaignRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	campaign, err := h.campaigns.Update(c.UserContext(), identity.UserID(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(campaign)
}

func (h *CampaignHandler) Delete(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.campaigns.Delete(c.UserContext(), identity.UserID(c), id); err != nil {
		return respondError(c, err)
	}
	return deleted(c, "Campaign deleted successfully")
}

func (h *CampaignHandler) AssignInfluencer(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.AssignInfluencerRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	a, err := h.campaigns.AssignInfluencer(c.UserContext(), identity.UserID(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

func (h *CampaignHandler) ListAssignments(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	p, err := listParams(c)
	if err != nil {
		return respondError(c, err)
	}
	rows, page, err := h.campaigns.ListAssignments(c.UserContext(), identity.UserID(c), id, p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewPaginated(rows, page, "Campaign influencers retrieved successfully"))
}

func (h *CampaignHandler) UpdateAssignment(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	influencerID, err := pathUUID(c, "influencer_id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateAssignmentRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	a, err := h.campaigns.UpdateAssignment(c.UserContext(), identity.UserID(c), id, influencerID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(a)
}

func (h *CampaignHandler) RemoveAssignment(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	influencerID, err := pathUUID(c, "influencer_id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.campaigns.RemoveAssignment(c.UserContext(), identity.UserID(c), id, influencerID); err != nil {
		return respondError(c, err)
	}
	return deleted(c, "Influencer removed from campaign")
}
