package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/advertisement"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
)

type updateAdvertisementHandler struct {
	logger *logrus.Logger
	adRepo advertisement.Repository
}

func NewUpdateAdvertisementHandler(logger *logrus.Logger, adRepo advertisement.Repository) Handler {
	return &updateAdvertisementHandler{
		logger: logger,
		adRepo: adRepo,
	}
}

func (h *updateAdvertisementHandler) Handle(c *fiber.Ctx) error {
	adID, err := uuid.Parse(c.Params("ad_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid advertisement ID"})
	}

	var req request.UpdateAdvertisementRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	entity, err := h.adRepo.Get(c.Context(), adID)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "advertisement not found"})
		}
		h.logger.WithError(err).Error("failed to load advertisement")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load advertisement"})
	}

	if req.Title != nil {
		entity.Title = *req.Title
	}
	if req.ImageURL != nil {
		entity.ImageURL = *req.ImageURL
	}
	if req.TargetURL != nil {
		entity.TargetURL = *req.TargetURL
	}
	if req.Placement != nil {
		entity.Placement = *req.Placement
	}
	if req.IsActive != nil {
		entity.IsActive = *req.IsActive
	}
	if req.StartsAt != nil {
		entity.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		entity.EndsAt = *req.EndsAt
	}
	if !entity.EndsAt.IsZero() && entity.EndsAt.Before(entity.StartsAt) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ends_at must not be before starts_at"})
	}

	if err := h.adRepo.Update(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to update advertisement")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update advertisement"})
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
