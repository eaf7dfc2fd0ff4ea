package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/directory"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
	"github.com/caraudioevents/platform/pkg/infra/cache"
)

type updateDirectoryListingHandler struct {
	logger        *logrus.Logger
	directoryRepo directory.Repository
	cache         *cache.Client
}

func NewUpdateDirectoryListingHandler(
	logger *logrus.Logger,
	directoryRepo directory.Repository,
	cacheClient *cache.Client,
) Handler {
	return &updateDirectoryListingHandler{
		logger:        logger,
		directoryRepo: directoryRepo,
		cache:         cacheClient,
	}
}

func (h *updateDirectoryListingHandler) Handle(c *fiber.Ctx) error {
	listingID, err := uuid.Parse(c.Params("listing_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid listing ID"})
	}

	var req request.UpdateDirectoryListingRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	entity, err := h.directoryRepo.Get(c.Context(), listingID)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "listing not found"})
		}
		h.logger.WithError(err).Error("failed to load directory listing")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load directory listing"})
	}

	oldCategory := entity.Category

	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.Category != nil {
		entity.Category = *req.Category
	}
	if req.Website != nil {
		entity.Website = *req.Website
	}
	if req.Phone != nil {
		entity.Phone = *req.Phone
	}
	if req.Address != nil {
		entity.Address = *req.Address
	}
	if req.Description != nil {
		entity.Description = *req.Description
	}
	if req.IsApproved != nil {
		entity.IsApproved = *req.IsApproved
	}

	if err := h.directoryRepo.Update(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to update directory listing")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update directory listing"})
	}

	keys := []string{cache.DirectoryKey(""), cache.DirectoryKey(entity.Category)}
	if oldCategory != entity.Category {
		keys = append(keys, cache.DirectoryKey(oldCategory))
	}
	if err := h.cache.Delete(c.Context(), keys...); err != nil {
		h.logger.WithError(err).Debug("failed to invalidate directory cache")
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
