package handlers

import (
	"log/slog"

	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/validation"
)

var validate = validation.New()

// respondError is the only way handlers turn an error into a response.
// Unclassified errors are logged and reported, then hidden behind a generic
// message.
func respondError(c *fiber.Ctx, err error) error {
	he := apperrors.MapErrorToHTTP(err)
	if he.StatusCode == fiber.StatusInternalServerError {
		slog.Error("request failed",
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"user_id", identity.UserID(c),
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
		if hub := sentryfiber.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
	}
	return c.Status(he.StatusCode).JSON(dto.ErrorResponse{
		Error:   true,
		Message: he.Message,
		Code:    he.Code,
		Errors:  he.Fields,
	})
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.New(apperrors.ErrBadRequest, "Invalid request body")
	}
	return validate.Struct(out)
}

func parseQuery(c *fiber.Ctx, out any) error {
	if err := c.QueryParser(out); err != nil {
		return &apperrors.ValidationError{Fields: []apperrors.FieldError{{Field: "query", Message: "is malformed"}}}
	}
	return validate.Struct(out)
}

// listParams reads page, limit, sort_by and sort_order.
func listParams(c *fiber.Ctx) (listquery.Params, error) {
	p := listquery.DefaultParams()
	if err := parseQuery(c, &p); err != nil {
		return listquery.Params{}, err
	}
	return p, nil
}

func pathUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, &apperrors.ValidationError{Fields: []apperrors.FieldError{{Field: name, Message: "must be a valid UUID"}}}
	}
	return id, nil
}

func deleted(c *fiber.Ctx, message string) error {
	return c.JSON(dto.SuccessResponse{Success: true, Message: message})
}
