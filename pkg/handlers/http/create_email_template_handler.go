package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/emailtemplate"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
)

type createEmailTemplateHandler struct {
	logger       *logrus.Logger
	templateRepo emailtemplate.Repository
}

func NewCreateEmailTemplateHandler(logger *logrus.Logger, templateRepo emailtemplate.Repository) Handler {
	return &createEmailTemplateHandler{
		logger:       logger,
		templateRepo: templateRepo,
	}
}

func (h *createEmailTemplateHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateEmailTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := h.templateRepo.GetByName(c.Context(), req.Name); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "template name already in use"})
	} else if !domain.IsNotFound(err) {
		h.logger.WithError(err).Error("failed to check template name")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create email template"})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	entity := &emailtemplate.Template{
		ID:       uuid.New(),
		Name:     req.Name,
		Subject:  req.Subject,
		HTMLBody: req.HTMLBody,
		TextBody: req.TextBody,
		IsActive: isActive,
	}
	if err := h.templateRepo.Create(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to create email template")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create email template"})
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
