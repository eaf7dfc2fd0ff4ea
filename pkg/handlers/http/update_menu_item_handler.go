package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/navigation"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
	"github.com/caraudioevents/platform/pkg/infra/cache"
	"github.com/caraudioevents/platform/pkg/menu"
)

type updateMenuItemHandler struct {
	logger   *logrus.Logger
	menuRepo navigation.Repository
	cache    *cache.Client
}

func NewUpdateMenuItemHandler(logger *logrus.Logger, menuRepo navigation.Repository, cacheClient *cache.Client) Handler {
	return &updateMenuItemHandler{
		logger:   logger,
		menuRepo: menuRepo,
		cache:    cacheClient,
	}
}

func (h *updateMenuItemHandler) Handle(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("item_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item ID"})
	}

	var req request.UpdateMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	entity, err := h.menuRepo.Get(c.Context(), itemID)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "navigation item not found"})
		}
		h.logger.WithError(err).Error("failed to load navigation item")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load navigation item"})
	}

	if req.Title != nil {
		entity.Title = *req.Title
	}
	if req.Href != nil {
		entity.Href = *req.Href
	}
	if req.IsActive != nil {
		entity.IsActive = *req.IsActive
	}
	if req.Icon != nil {
		entity.Icon = *req.Icon
	}
	if req.Badge != nil {
		entity.Badge = *req.Badge
	}
	if req.Description != nil {
		entity.Description = *req.Description
	}

	if req.ParentID != nil {
		if *req.ParentID == "" {
			entity.ParentID = nil
			// Moving to the root level appends after the existing roots.
			items, err := h.menuRepo.List(c.Context())
			if err != nil {
				h.logger.WithError(err).Error("failed to list navigation items")
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list navigation items"})
			}
			entity.Order = menu.NextOrder(menu.BuildHierarchy(items), nil)
		} else {
			parsed, err := uuid.Parse(*req.ParentID)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid parent ID"})
			}
			if parsed == entity.ID {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "item cannot be its own parent"})
			}
			if _, err := h.menuRepo.Get(c.Context(), parsed); err != nil {
				if domain.IsNotFound(err) {
					return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "parent item not found"})
				}
				h.logger.WithError(err).Error("failed to load parent item")
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load parent item"})
			}
			items, err := h.menuRepo.List(c.Context())
			if err != nil {
				h.logger.WithError(err).Error("failed to list navigation items")
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list navigation items"})
			}
			forest := menu.BuildHierarchy(items)
			if descendantOf(forest, entity.ID, parsed) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot move item under its own descendant"})
			}
			entity.ParentID = &parsed
			entity.Order = menu.NextOrder(forest, &parsed)
		}
	}

	if err := h.menuRepo.Update(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to update navigation item")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update navigation item"})
	}

	if err := h.cache.Delete(c.Context(), cache.MenuTreeKey); err != nil {
		h.logger.WithError(err).Debug("failed to invalidate navigation tree cache")
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}

// descendantOf reports whether candidateID sits in the subtree rooted at
// itemID.
func descendantOf(forest []*navigation.Item, itemID, candidateID uuid.UUID) bool {
	var subtree *navigation.Item
	for _, node := range menu.Flatten(forest) {
		if node.ID == itemID {
			subtree = node
			break
		}
	}
	if subtree == nil {
		return false
	}
	for _, node := range menu.Flatten(subtree.Children) {
		if node.ID == candidateID {
			return true
		}
	}
	return false
}
