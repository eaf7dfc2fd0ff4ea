package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/event"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
)

type updateEventHandler struct {
	logger    *logrus.Logger
	eventRepo event.Repository
}

func NewUpdateEventHandler(logger *logrus.Logger, eventRepo event.Repository) Handler {
	return &updateEventHandler{
		logger:    logger,
		eventRepo: eventRepo,
	}
}

func (h *updateEventHandler) Handle(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event ID"})
	}

	var req request.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	entity, err := h.eventRepo.Get(c.Context(), eventID)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
		}
		h.logger.WithError(err).Error("failed to load event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load event"})
	}

	if req.Status != nil {
		switch *req.Status {
		case event.StatusDraft, event.StatusPublished, event.StatusCompleted, event.StatusCancelled:
			entity.Status = *req.Status
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status value"})
		}
	}
	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.StartDate != nil {
		entity.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		entity.EndDate = *req.EndDate
	}
	if req.Location != nil {
		entity.Location = *req.Location
	}
	if req.VenueName != nil {
		entity.VenueName = *req.VenueName
	}
	if req.Description != nil {
		entity.Description = *req.Description
	}
	if req.MaxCompetitors != nil {
		entity.MaxCompetitors = *req.MaxCompetitors
	}
	if req.EarlyBirdPrice != nil {
		entity.EarlyBirdPrice = *req.EarlyBirdPrice
	}
	if req.RegularPrice != nil {
		entity.RegularPrice = *req.RegularPrice
	}

	if !entity.EndDate.IsZero() && entity.EndDate.Before(entity.StartDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date must not be before start_date"})
	}

	if err := h.eventRepo.Update(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to update event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update event"})
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
