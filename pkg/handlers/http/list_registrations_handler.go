package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain/registration"
	"github.com/caraudioevents/platform/pkg/domain/user"
)

type listRegistrationsHandler struct {
	logger           *logrus.Logger
	registrationRepo registration.Repository
}

func NewListRegistrationsHandler(logger *logrus.Logger, registrationRepo registration.Repository) Handler {
	return &listRegistrationsHandler{
		logger:           logger,
		registrationRepo: registrationRepo,
	}
}

// Handle lists registrations. Admins may filter by event or user; members
// only ever see their own.
func (h *listRegistrationsHandler) Handle(c *fiber.Ctx) error {
	actor, ok := c.Locals(common.UserContextKey).(*user.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

	filter := registration.ListFilter{Status: c.Query("status")}

	if actor.IsAdmin() {
		if raw := c.Query("event_id"); raw != "" {
			eventID, err := uuid.Parse(raw)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event ID"})
			}
			filter.EventID = eventID
		}
		if raw := c.Query("user_id"); raw != "" {
			userID, err := uuid.Parse(raw)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user ID"})
			}
			filter.UserID = userID
		}
	} else {
		filter.UserID = actor.ID
	}

	registrations, err := h.registrationRepo.List(c.Context(), filter)
	if err != nil {
		h.logger.WithError(err).Error("failed to list registrations")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list registrations"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"registrations": registrations})
}
