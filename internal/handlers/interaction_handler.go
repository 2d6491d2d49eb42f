package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/storage"
)

type InteractionHandler struct {
	interactions *services.InteractionService
	maxFileBytes int64
}

func NewInteractionHandler(interactions *services.InteractionService, maxFileBytes int64) *InteractionHandler {
	return &InteractionHandler{interactions: interactions, maxFileBytes: maxFileBytes}
}

func (h *InteractionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInteractionRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	i, err := h.interactions.Create(c.UserContext(), identity.UserID(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(i)
}

func (h *InteractionHandler) List(c *fiber.Ctx) error {
	p, err := listParams(c)
	if err != nil {
		return respondError(c, err)
	}
	var f dto.InteractionFilter
	if err := parseQuery(c, &f); err != nil {
		return respondError(c, err)
	}

	rows, page, err := h.interactions.List(c.UserContext(), identity.UserID(c), p, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewPaginated(rows, page, "Interactions retrieved successfully"))
}

func (h *InteractionHandler) Get(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	i, err := h.interactions.Get(c.UserContext(), identity.UserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(i)
}

func (h *InteractionHandler) Update(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateInteractionRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	i, err := h.interactions.Update(c.UserContext(), identity.UserID(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(i)
}

func (h *InteractionHandler) Delete(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.interactions.Delete(c.UserContext(), identity.UserID(c), id); err != nil {
		return respondError(c, err)
	}
	return deleted(c, "Interaction deleted successfully")
}

// Attach reads the multipart "file" field and stores it against the
// interaction.
func (h *InteractionHandler) Attach(c *fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return respondError(c, apperrors.New(apperrors.ErrBadRequest, "Multipart field 'file' is required"))
	}
	if h.maxFileBytes > 0 && fh.Size > h.maxFileBytes {
		return respondError(c, &apperrors.ValidationError{Fields: []apperrors.FieldError{{
			Field:   "file",
			Message: fmt.Sprintf("must be at most %d bytes", h.maxFileBytes),
		}}})
	}

	f, err := fh.Open()
	if err != nil {
		return respondError(c, fmt.Errorf("failed to open upload: %w", err))
	}
	defer f.Close()

	contentType := fh.Header.Get(fiber.HeaderContentType)
	if contentType == "" {
		contentType = storage.ContentType(fh.Filename)
	}
	i, err := h.interactions.AttachFile(c.UserContext(), identity.UserID(c), id, services.Attachment{
		Filename:    fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(i)
}
