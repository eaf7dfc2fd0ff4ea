package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/emailtemplate"
)

type deleteEmailTemplateHandler struct {
	logger       *logrus.Logger
	templateRepo emailtemplate.Repository
}

func NewDeleteEmailTemplateHandler(logger *logrus.Logger, templateRepo emailtemplate.Repository) Handler {
	return &deleteEmailTemplateHandler{
		logger:       logger,
		templateRepo: templateRepo,
	}
}

func (h *deleteEmailTemplateHandler) Handle(c *fiber.Ctx) error {
	templateID, err := uuid.Parse(c.Params("template_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid template ID"})
	}

	if _, err := h.templateRepo.Get(c.Context(), templateID); err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "email template not found"})
		}
		h.logger.WithError(err).Error("failed to load email template")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load email template"})
	}

	if err := h.templateRepo.Delete(c.Context(), templateID); err != nil {
		h.logger.WithError(err).Error("failed to delete email template")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete email template"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
