package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain/event"
	"github.com/caraudioevents/platform/pkg/domain/user"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
	"github.com/caraudioevents/platform/pkg/infra/auditlogs"
)

type createEventHandler struct {
	logger      *logrus.Logger
	eventRepo   event.Repository
	auditWriter auditlogs.Service
}

func NewCreateEventHandler(
	logger *logrus.Logger,
	eventRepo event.Repository,
	auditWriter auditlogs.Service,
) Handler {
	return &createEventHandler{
		logger:      logger,
		eventRepo:   eventRepo,
		auditWriter: auditWriter,
	}
}

func (h *createEventHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	switch req.EventType {
	case event.TypeSPL, event.TypeSQ, event.TypeShow:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event_type"})
	}

	entity := &event.Event{
		ID:             uuid.New(),
		Name:           req.Name,
		EventType:      req.EventType,
		Status:         event.StatusDraft,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Location:       req.Location,
		VenueName:      req.VenueName,
		Description:    req.Description,
		MaxCompetitors: req.MaxCompetitors,
		EarlyBirdPrice: req.EarlyBirdPrice,
		RegularPrice:   req.RegularPrice,
	}
	if err := h.eventRepo.Create(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to create event")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create event"})
	}

	if actor, ok := c.Locals(common.UserContextKey).(*user.User); ok {
		h.auditWriter.Write(c.Context(), auditlogs.Record{
			ActorID:    actor.ID,
			ActorEmail: actor.Email,
			Action:     "event.created",
			TargetType: "event",
			TargetID:   entity.ID.String(),
			Detail:     entity.Name,
			IPAddress:  c.IP(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
