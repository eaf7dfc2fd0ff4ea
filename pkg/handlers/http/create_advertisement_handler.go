package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain/advertisement"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
)

type createAdvertisementHandler struct {
	logger *logrus.Logger
	adRepo advertisement.Repository
}

func NewCreateAdvertisementHandler(logger *logrus.Logger, adRepo advertisement.Repository) Handler {
	return &createAdvertisementHandler{
		logger: logger,
		adRepo: adRepo,
	}
}

func (h *createAdvertisementHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateAdvertisementRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entity := &advertisement.Advertisement{
		ID:        uuid.New(),
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		TargetURL: req.TargetURL,
		Placement: req.Placement,
		IsActive:  true,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
	}
	if err := h.adRepo.Create(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to create advertisement")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create advertisement"})
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
