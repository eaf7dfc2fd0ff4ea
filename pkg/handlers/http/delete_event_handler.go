package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/event"
	"github.com/caraudioevents/platform/pkg/domain/user"
	"github.com/caraudioevents/platform/pkg/infra/auditlogs"
	"github.com/caraudioevents/platform/pkg/infra/repository"
)

type deleteEventHandler struct {
	logger      *logrus.Logger
	eventRepo   event.Repository
	auditWriter auditlogs.Service
}

func NewDeleteEventHandler(
	logger *logrus.Logger,
	eventRepo event.Repository,
	auditWriter auditlogs.Service,
) Handler {
	return &deleteEventHandler{
		logger:      logger,
		eventRepo:   eventRepo,
		auditWriter: auditWriter,
	}
}

// Handle deletes an event. Events with registrations cannot be deleted;
// cancel them instead so the registration history survives.
func (h *deleteEventHandler) Handle(c *fiber.Ctx) error {
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

	if err := h.eventRepo.Delete(c.Context(), entity.ID); err != nil {
		if errors.Is(err, repository.ErrEventHasRegistrations) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "event has registrations; cancel it instead"})
		}
		h.logger.WithError(err).Error("failed to delete event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete event"})
	}

	if actor, ok := c.Locals(common.UserContextKey).(*user.User); ok {
		h.auditWriter.Write(c.Context(), auditlogs.Record{
			ActorID:    actor.ID,
			ActorEmail: actor.Email,
			Action:     "event.deleted",
			TargetType: "event",
			TargetID:   entity.ID.String(),
			Detail:     entity.Name,
			IPAddress:  c.IP(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
