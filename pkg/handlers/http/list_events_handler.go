package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain/event"
)

type listEventsHandler struct {
	logger    *logrus.Logger
	eventRepo event.Repository
}

func NewListEventsHandler(logger *logrus.Logger, eventRepo event.Repository) Handler {
	return &listEventsHandler{
		logger:    logger,
		eventRepo: eventRepo,
	}
}

func (h *listEventsHandler) Handle(c *fiber.Ctx) error {
	filter := event.ListFilter{
		Status:    c.Query("status"),
		EventType: c.Query("event_type"),
		Offset:    c.QueryInt("offset", 0),
		Limit:     c.QueryInt("limit", defaultPageSize),
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = defaultPageSize
	}

	events, err := h.eventRepo.List(c.Context(), filter)
	if err != nil {
		h.logger.WithError(err).Error("failed to list events")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list events"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"events": events})
}
