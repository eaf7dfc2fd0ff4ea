package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/navigation"
	"github.com/caraudioevents/platform/pkg/infra/cache"
)

type deleteMenuItemHandler struct {
	logger   *logrus.Logger
	menuRepo navigation.Repository
	cache    *cache.Client
}

func NewDeleteMenuItemHandler(logger *logrus.Logger, menuRepo navigation.Repository, cacheClient *cache.Client) Handler {
	return &deleteMenuItemHandler{
		logger:   logger,
		menuRepo: menuRepo,
		cache:    cacheClient,
	}
}

// Handle removes an item. Its children are re-parented to the deleted item's
// own parent so they stay visible instead of becoming orphans.
func (h *deleteMenuItemHandler) Handle(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("item_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item ID"})
	}

	entity, err := h.menuRepo.Get(c.Context(), itemID)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "navigation item not found"})
		}
		h.logger.WithError(err).Error("failed to load navigation item")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load navigation item"})
	}

	if err := h.menuRepo.ReparentChildren(c.Context(), entity.ID, entity.ParentID); err != nil {
		h.logger.WithError(err).Error("failed to reparent children")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete navigation item"})
	}
	if err := h.menuRepo.Delete(c.Context(), entity.ID); err != nil {
		h.logger.WithError(err).Error("failed to delete navigation item")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete navigation item"})
	}

	if err := h.cache.Delete(c.Context(), cache.MenuTreeKey); err != nil {
		h.logger.WithError(err).Debug("failed to invalidate navigation tree cache")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
