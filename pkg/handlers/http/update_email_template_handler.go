package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/emailtemplate"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
)

type updateEmailTemplateHandler struct {
	logger       *logrus.Logger
	templateRepo emailtemplate.Repository
}

func NewUpdateEmailTemplateHandler(logger *logrus.Logger, templateRepo emailtemplate.Repository) Handler {
	return &updateEmailTemplateHandler{
		logger:       logger,
		templateRepo: templateRepo,
	}
}

func (h *updateEmailTemplateHandler) Handle(c *fiber.Ctx) error {
	templateID, err := uuid.Parse(c.Params("template_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid template ID"})
	}

	var req request.UpdateEmailTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	entity, err := h.templateRepo.Get(c.Context(), templateID)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "email template not found"})
		}
		h.logger.WithError(err).Error("failed to load email template")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load email template"})
	}

	if req.Subject != nil {
		entity.Subject = *req.Subject
	}
	if req.HTMLBody != nil {
		entity.HTMLBody = *req.HTMLBody
	}
	if req.TextBody != nil {
		entity.TextBody = *req.TextBody
	}
	if req.IsActive != nil {
		entity.IsActive = *req.IsActive
	}

	if err := h.templateRepo.Update(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to update email template")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update email template"})
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
