package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain/advertisement"
)

type listAdvertisementsHandler struct {
	logger *logrus.Logger
	adRepo advertisement.Repository
}

func NewListAdvertisementsHandler(logger *logrus.Logger, adRepo advertisement.Repository) Handler {
	return &listAdvertisementsHandler{
		logger: logger,
		adRepo: adRepo,
	}
}

// Handle returns the ads currently in their serving window for a placement.
func (h *listAdvertisementsHandler) Handle(c *fiber.Ctx) error {
	placement := c.Query("placement")

	ads, err := h.adRepo.List(c.Context(), placement)
	if err != nil {
		h.logger.WithError(err).Error("failed to list advertisements")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list advertisements"})
	}

	now := time.Now()
	live := make([]advertisement.Advertisement, 0, len(ads))
	for _, ad := range ads {
		if ad.IsLive(now) {
			live = append(live, ad)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"advertisements": live})
}
