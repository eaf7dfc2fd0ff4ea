package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain/payment"
	"github.com/caraudioevents/platform/pkg/domain/user"
)

type listPaymentsHandler struct {
	logger      *logrus.Logger
	paymentRepo payment.Repository
}

func NewListPaymentsHandler(logger *logrus.Logger, paymentRepo payment.Repository) Handler {
	return &listPaymentsHandler{
		logger:      logger,
		paymentRepo: paymentRepo,
	}
}

// Handle lists the caller's own payment history.
func (h *listPaymentsHandler) Handle(c *fiber.Ctx) error {
	entity, ok := c.Locals(common.UserContextKey).(*user.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

	payments, err := h.paymentRepo.ListByUser(c.Context(), entity.ID)
	if err != nil {
		h.logger.WithError(err).Error("failed to list payments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list payments"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"payments": payments})
}
