package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/event"
)

type eventStatsHandler struct {
	logger    *logrus.Logger
	eventRepo event.Repository
}

func NewEventStatsHandler(logger *logrus.Logger, eventRepo event.Repository) Handler {
	return &eventStatsHandler{
		logger:    logger,
		eventRepo: eventRepo,
	}
}

// Handle returns registration and revenue aggregates for one event.
func (h *eventStatsHandler) Handle(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event ID"})
	}

	if _, err := h.eventRepo.Get(c.Context(), eventID); err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
		}
		h.logger.WithError(err).Error("failed to load event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load event"})
	}

	stats, err := h.eventRepo.Stats(c.Context(), eventID)
	if err != nil {
		h.logger.WithError(err).Error("failed to compute event stats")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to compute event stats"})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
