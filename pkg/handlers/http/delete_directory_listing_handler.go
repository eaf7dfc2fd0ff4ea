package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/directory"
	"github.com/caraudioevents/platform/pkg/infra/cache"
)

type deleteDirectoryListingHandler struct {
	logger        *logrus.Logger
	directoryRepo directory.Repository
	cache         *cache.Client
}

func NewDeleteDirectoryListingHandler(
	logger *logrus.Logger,
	directoryRepo directory.Repository,
	cacheClient *cache.Client,
) Handler {
	return &deleteDirectoryListingHandler{
		logger:        logger,
		directoryRepo: directoryRepo,
		cache:         cacheClient,
	}
}

func (h *deleteDirectoryListingHandler) Handle(c *fiber.Ctx) error {
	listingID, err := uuid.Parse(c.Params("listing_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid listing ID"})
	}

	entity, err := h.directoryRepo.Get(c.Context(), listingID)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "listing not found"})
		}
		h.logger.WithError(err).Error("failed to load directory listing")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load directory listing"})
	}

	if err := h.directoryRepo.Delete(c.Context(), entity.ID); err != nil {
		h.logger.WithError(err).Error("failed to delete directory listing")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete directory listing"})
	}

	if err := h.cache.Delete(c.Context(), cache.DirectoryKey(""), cache.DirectoryKey(entity.Category)); err != nil {
		h.logger.WithError(err).Debug("failed to invalidate directory cache")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
