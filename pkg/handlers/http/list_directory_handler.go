package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain/directory"
	"github.com/caraudioevents/platform/pkg/infra/cache"
)

type listDirectoryHandler struct {
	logger        *logrus.Logger
	directoryRepo directory.Repository
	cache         *cache.Client
}

func NewListDirectoryHandler(logger *logrus.Logger, directoryRepo directory.Repository, cacheClient *cache.Client) Handler {
	return &listDirectoryHandler{
		logger:        logger,
		directoryRepo: directoryRepo,
		cache:         cacheClient,
	}
}

// Handle lists approved directory listings, optionally filtered by category.
// Results are cached per category; the write handlers invalidate.
func (h *listDirectoryHandler) Handle(c *fiber.Ctx) error {
	category := c.Query("category")
	key := cache.DirectoryKey(category)

	if cached, err := h.cache.Get(c.Context(), key); err == nil && cached != "" {
		c.Set("Content-Type", "application/json")
		return c.Status(fiber.StatusOK).SendString(cached)
	}

	listings, err := h.directoryRepo.List(c.Context(), category, true)
	if err != nil {
		h.logger.WithError(err).Error("failed to list directory listings")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list directory listings"})
	}

	payload, err := json.Marshal(fiber.Map{"listings": listings})
	if err != nil {
		h.logger.WithError(err).Error("failed to marshal directory listings")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list directory listings"})
	}

	if err := h.cache.Set(c.Context(), key, string(payload), cache.DirectoryTTL); err != nil {
		h.logger.WithError(err).Debug("failed to cache directory listings")
	}

	c.Set("Content-Type", "application/json")
	return c.Status(fiber.StatusOK).Send(payload)
}
