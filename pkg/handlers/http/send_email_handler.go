package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/emailtemplate"
	"github.com/caraudioevents/platform/pkg/domain/user"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
	"github.com/caraudioevents/platform/pkg/infra/auditlogs"
	"github.com/caraudioevents/platform/pkg/infra/email"
)

type sendEmailHandler struct {
	logger       *logrus.Logger
	templateRepo emailtemplate.Repository
	bulkSender   *email.BulkSender
	auditWriter  auditlogs.Service
}

func NewSendEmailHandler(
	logger *logrus.Logger,
	templateRepo emailtemplate.Repository,
	bulkSender *email.BulkSender,
	auditWriter auditlogs.Service,
) Handler {
	return &sendEmailHandler{
		logger:       logger,
		templateRepo: templateRepo,
		bulkSender:   bulkSender,
		auditWriter:  auditWriter,
	}
}

// Handle sends a stored template to a recipient list. Individual recipient
// failures do not abort the batch; the per-recipient outcome is returned.
func (h *sendEmailHandler) Handle(c *fiber.Ctx) error {
	var req request.SendEmailRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	template, err := h.templateRepo.GetByName(c.Context(), req.TemplateName)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "email template not found"})
		}
		h.logger.WithError(err).Error("failed to load email template")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load email template"})
	}
	if !template.IsActive {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "email template is inactive"})
	}

	rendered := template.Rendered(req.Variables)
	subject := rendered.Subject
	if req.Subject != "" {
		subject = emailtemplate.Render(req.Subject, req.Variables)
	}

	results := h.bulkSender.SendToAll(c.Context(), req.Recipients, email.Message{
		Subject: subject,
		HTML:    rendered.HTMLBody,
		Text:    rendered.TextBody,
	})

	sent := 0
	failed := 0
	outcomes := make([]fiber.Map, 0, len(results))
	for _, res := range results {
		outcome := fiber.Map{"recipient": res.Recipient}
		if res.Err != nil {
			failed++
			outcome["error"] = res.Err.Error()
		} else {
			sent++
			outcome["message_id"] = res.MessageID
		}
		outcomes = append(outcomes, outcome)
	}

	if actor, ok := c.Locals(common.UserContextKey).(*user.User); ok {
		h.auditWriter.Write(c.Context(), auditlogs.Record{
			ActorID:    actor.ID,
			ActorEmail: actor.Email,
			Action:     "email.sent",
			TargetType: "email_template",
			TargetID:   template.ID.String(),
			Detail:     template.Name,
			IPAddress:  c.IP(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"sent":    sent,
		"failed":  failed,
		"results": outcomes,
	})
}
