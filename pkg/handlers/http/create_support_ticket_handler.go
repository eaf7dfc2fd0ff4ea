package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain/supportticket"
	"github.com/caraudioevents/platform/pkg/domain/user"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
)

type createSupportTicketHandler struct {
	logger     *logrus.Logger
	ticketRepo supportticket.Repository
}

func NewCreateSupportTicketHandler(logger *logrus.Logger, ticketRepo supportticket.Repository) Handler {
	return &createSupportTicketHandler{
		logger:     logger,
		ticketRepo: ticketRepo,
	}
}

// Handle opens a support ticket for the caller. Tickets always start open;
// the caller's identity comes from the session, never the payload.
func (h *createSupportTicketHandler) Handle(c *fiber.Ctx) error {
	actor, ok := c.Locals(common.UserContextKey).(*user.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

	var req request.CreateSupportTicketRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	priority := req.Priority
	if priority == "" {
		priority = supportticket.PriorityNormal
	}
	category := req.Category
	if category == "" {
		category = "general"
	}

	entity := &supportticket.Ticket{
		ID:          uuid.New(),
		UserID:      actor.ID,
		UserEmail:   actor.Email,
		Subject:     req.Subject,
		Description: req.Description,
		Category:    category,
		Priority:    priority,
		Status:      supportticket.StatusOpen,
	}
	if err := h.ticketRepo.Create(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to create support ticket")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create support ticket"})
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
