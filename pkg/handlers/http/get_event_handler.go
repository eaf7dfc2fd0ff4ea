package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/event"
)

type getEventHandler struct {
	logger    *logrus.Logger
	eventRepo event.Repository
}

func NewGetEventHandler(logger *logrus.Logger, eventRepo event.Repository) Handler {
	return &getEventHandler{
		logger:    logger,
		eventRepo: eventRepo,
	}
}

func (h *getEventHandler) Handle(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event ID"})
	}

	entity, err := h.eventRepo.Get(c.Context(), eventID)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
		}
		h.logger.WithError(err).Error("failed to load event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load event"})
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
