package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/advertisement"
)

type deleteAdvertisementHandler struct {
	logger *logrus.Logger
	adRepo advertisement.Repository
}

func NewDeleteAdvertisementHandler(logger *logrus.Logger, adRepo advertisement.Repository) Handler {
	return &deleteAdvertisementHandler{
		logger: logger,
		adRepo: adRepo,
	}
}

func (h *deleteAdvertisementHandler) Handle(c *fiber.Ctx) error {
	adID, err := uuid.Parse(c.Params("ad_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid advertisement ID"})
	}

	if _, err := h.adRepo.Get(c.Context(), adID); err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "advertisement not found"})
		}
		h.logger.WithError(err).Error("failed to load advertisement")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load advertisement"})
	}

	if err := h.adRepo.Delete(c.Context(), adID); err != nil {
		h.logger.WithError(err).Error("failed to delete advertisement")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete advertisement"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
