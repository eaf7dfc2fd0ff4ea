package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain/supportticket"
)

type listSupportTicketsHandler struct {
	logger     *logrus.Logger
	ticketRepo supportticket.Repository
}

func NewListSupportTicketsHandler(logger *logrus.Logger, ticketRepo supportticket.Repository) Handler {
	return &listSupportTicketsHandler{
		logger:     logger,
		ticketRepo: ticketRepo,
	}
}

func (h *listSupportTicketsHandler) Handle(c *fiber.Ctx) error {
	filter := supportticket.ListFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}
	if raw := c.Query("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user ID"})
		}
		filter.UserID = userID
	}

	tickets, err := h.ticketRepo.List(c.Context(), filter)
	if err != nil {
		h.logger.WithError(err).Error("failed to list support tickets")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list support tickets"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"tickets": tickets})
}
