package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/payment"
	"github.com/caraudioevents/platform/pkg/domain/registration"
	"github.com/caraudioevents/platform/pkg/domain/user"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
	"github.com/caraudioevents/platform/pkg/infra/auditlogs"
	"github.com/caraudioevents/platform/pkg/infra/payments"
	"github.com/caraudioevents/platform/pkg/infra/repository"
)

type confirmPaymentHandler struct {
	logger           *logrus.Logger
	registrationRepo registration.Repository
	paymentRepo      payment.Repository
	processor        payments.Client
	auditWriter      auditlogs.Service
}

func NewConfirmPaymentHandler(
	logger *logrus.Logger,
	registrationRepo registration.Repository,
	paymentRepo payment.Repository,
	processor payments.Client,
	auditWriter auditlogs.Service,
) Handler {
	return &confirmPaymentHandler{
		logger:           logger,
		registrationRepo: registrationRepo,
		paymentRepo:      paymentRepo,
		processor:        processor,
		auditWriter:      auditWriter,
	}
}

// Handle confirms a registration payment. The payment outcome comes from the
// processor's server-side intent status only; nothing the client asserts
// about the charge is trusted.
func (h *confirmPaymentHandler) Handle(c *fiber.Ctx) error {
	var req request.ConfirmPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	registrationID, err := uuid.Parse(req.RegistrationID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid registration ID"})
	}

	reg, err := h.registrationRepo.Get(c.Context(), registrationID)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "registration not found"})
		}
		h.logger.WithError(err).Error("failed to load registration")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load registration"})
	}

	if reg.Status != registration.StatusPendingPayment {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "registration is not awaiting payment"})
	}

	intent, err := h.processor.RetrieveIntent(c.Context(), req.PaymentIntentID)
	if err != nil {
		h.logger.WithError(err).Error("failed to retrieve payment intent")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "payment processor unavailable"})
	}

	if intent.Status != payments.IntentStatusSucceeded {
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"error":  "payment has not succeeded",
			"status": intent.Status,
		})
	}

	entity := &payment.Payment{
		ID:              uuid.New(),
		RegistrationID:  reg.ID,
		UserID:          reg.UserID,
		PaymentIntentID: intent.ID,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
		Status:          intent.Status,
	}
	if err := h.paymentRepo.Create(c.Context(), entity); err != nil {
		if errors.Is(err, repository.ErrPaymentAlreadyRecorded) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "payment already recorded"})
		}
		h.logger.WithError(err).Error("failed to record payment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to record payment"})
	}

	if err := h.registrationRepo.UpdateStatus(c.Context(), reg.ID, registration.StatusConfirmed); err != nil {
		// The payment row exists; the registration can be reconciled later.
		h.logger.WithError(err).WithField("registration_id", reg.ID).
			Error("payment recorded but registration status update failed")
	}

	if actor, ok := c.Locals(common.UserContextKey).(*user.User); ok {
		h.auditWriter.Write(c.Context(), auditlogs.Record{
			ActorID:    actor.ID,
			ActorEmail: actor.Email,
			Action:     "payment.confirmed",
			TargetType: "registration",
			TargetID:   reg.ID.String(),
			Detail:     intent.ID,
			IPAddress:  c.IP(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
