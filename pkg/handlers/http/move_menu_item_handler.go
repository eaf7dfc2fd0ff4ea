package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain/navigation"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
	"github.com/caraudioevents/platform/pkg/infra/cache"
	"github.com/caraudioevents/platform/pkg/menu"
)

type moveMenuItemHandler struct {
	logger   *logrus.Logger
	menuRepo navigation.Repository
	cache    *cache.Client
}

func NewMoveMenuItemHandler(logger *logrus.Logger, menuRepo navigation.Repository, cacheClient *cache.Client) Handler {
	return &moveMenuItemHandler{
		logger:   logger,
		menuRepo: menuRepo,
		cache:    cacheClient,
	}
}

// Handle swaps an item's display order with its adjacent sibling. Moving the
// first item up or the last item down is a no-op, not an error.
func (h *moveMenuItemHandler) Handle(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("item_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item ID"})
	}

	var req request.MoveMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	items, err := h.menuRepo.List(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list navigation items")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list navigation items"})
	}
	forest := menu.BuildHierarchy(items)

	var target *navigation.Item
	for _, node := range menu.Flatten(forest) {
		if node.ID == itemID {
			target = node
			break
		}
	}
	if target == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "navigation item not found"})
	}

	siblings := menu.Siblings(forest, target.ParentID)
	index := -1
	for i, sibling := range siblings {
		if sibling.ID == target.ID {
			index = i
			break
		}
	}

	var neighbor *navigation.Item
	switch req.Direction {
	case "up":
		if index > 0 {
			neighbor = siblings[index-1]
		}
	case "down":
		if index >= 0 && index < len(siblings)-1 {
			neighbor = siblings[index+1]
		}
	}

	if neighbor == nil {
		// Already at the edge.
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"item": target, "moved": false})
	}

	menu.SwapOrders(target, neighbor)
	if err := h.menuRepo.SwapOrders(c.Context(), target, neighbor); err != nil {
		h.logger.WithError(err).Error("failed to persist order swap")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to move navigation item"})
	}

	if err := h.cache.Delete(c.Context(), cache.MenuTreeKey); err != nil {
		h.logger.WithError(err).Debug("failed to invalidate navigation tree cache")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"item": target, "moved": true})
}
