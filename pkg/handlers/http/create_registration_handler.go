package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/event"
	"github.com/caraudioevents/platform/pkg/domain/registration"
	"github.com/caraudioevents/platform/pkg/domain/user"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
)

type createRegistrationHandler struct {
	logger           *logrus.Logger
	eventRepo        event.Repository
	registrationRepo registration.Repository
}

func NewCreateRegistrationHandler(
	logger *logrus.Logger,
	eventRepo event.Repository,
	registrationRepo registration.Repository,
) Handler {
	return &createRegistrationHandler{
		logger:           logger,
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
	}
}

// Handle registers the caller for a published event. The registration starts
// in pending_payment; the confirm payment endpoint moves it to confirmed.
func (h *createRegistrationHandler) Handle(c *fiber.Ctx) error {
	actor, ok := c.Locals(common.UserContextKey).(*user.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

	var req request.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event ID"})
	}

	evt, err := h.eventRepo.Get(c.Context(), eventID)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
		}
		h.logger.WithError(err).Error("failed to load event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load event"})
	}
	if evt.Status != event.StatusPublished {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "event is not open for registration"})
	}

	if evt.MaxCompetitors > 0 {
		existing, err := h.registrationRepo.List(c.Context(), registration.ListFilter{EventID: evt.ID})
		if err != nil {
			h.logger.WithError(err).Error("failed to count registrations")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create registration"})
		}
		active := 0
		for _, reg := range existing {
			if reg.Status != registration.StatusCancelled {
				active++
			}
		}
		if active >= evt.MaxCompetitors {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "event is full"})
		}
	}

	entity := &registration.Registration{
		ID:             uuid.New(),
		EventID:        evt.ID,
		UserID:         actor.ID,
		CompetitorName: req.CompetitorName,
		Email:          req.Email,
		Phone:          req.Phone,
		ClassID:        req.ClassID,
		VehicleInfo:    req.VehicleInfo,
		TeamName:       req.TeamName,
		Status:         registration.StatusPendingPayment,
	}
	if err := h.registrationRepo.Create(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to create registration")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create registration"})
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
