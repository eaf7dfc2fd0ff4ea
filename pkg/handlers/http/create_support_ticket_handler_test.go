package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/supportticket"
	"github.com/caraudioevents/platform/pkg/domain/user"
)

type fakeTicketRepo struct {
	tickets []*supportticket.Ticket
}

func (f *fakeTicketRepo) Get(_ context.Context, id uuid.UUID) (*supportticket.Ticket, error) {
	for _, t := range f.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domain.NewNotFoundError("support ticket", id)
}

func (f *fakeTicketRepo) List(_ context.Context, filter supportticket.ListFilter) ([]supportticket.Ticket, error) {
	var out []supportticket.Ticket
	for _, t := range f.tickets {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTicketRepo) Create(_ context.Context, ticket *supportticket.Ticket) error {
	f.tickets = append(f.tickets, ticket)
	return nil
}

func (f *fakeTicketRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	for _, t := range f.tickets {
		if t.ID == id {
			t.Status = status
			return nil
		}
	}
	return domain.NewNotFoundError("support ticket", id)
}

func supportTicketApp(repo *fakeTicketRepo, actor *user.User) *fiber.App {
	handler := NewCreateSupportTicketHandler(logrus.New(), repo)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if actor != nil {
			c.Locals(common.UserContextKey, actor)
		}
		return c.Next()
	})
	app.Post("/support/tickets", handler.Handle)
	return app
}

func TestCreateSupportTicketHandler_OpensTicketForCaller(t *testing.T) {
	repo := &fakeTicketRepo{}
	actor := &user.User{ID: uuid.New(), Email: "member@example.com", Role: user.RoleMember, Status: user.StatusActive}
	app := supportTicketApp(repo, actor)

	body, _ := json.Marshal(map[string]string{
		"subject":     "Cannot join team",
		"description": "The join button returns an error for me.",
	})
	req := httptest.NewRequest("POST", "/support/tickets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.Len(t, repo.tickets, 1)
	created := repo.tickets[0]
	assert.Equal(t, actor.ID, created.UserID)
	assert.Equal(t, actor.Email, created.UserEmail)
	assert.Equal(t, supportticket.StatusOpen, created.Status)
	assert.Equal(t, supportticket.PriorityNormal, created.Priority)
	assert.Equal(t, "general", created.Category)

	respBody, _ := io.ReadAll(resp.Body)
	var got supportticket.Ticket
	require.NoError(t, json.Unmarshal(respBody, &got))
	assert.Equal(t, "Cannot join team", got.Subject)
}

func TestCreateSupportTicketHandler_RequiresSubject(t *testing.T) {
	repo := &fakeTicketRepo{}
	actor := &user.User{ID: uuid.New(), Email: "member@example.com", Role: user.RoleMember}
	app := supportTicketApp(repo, actor)

	body, _ := json.Marshal(map[string]string{"description": "something broke"})
	req := httptest.NewRequest("POST", "/support/tickets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, repo.tickets)
}

func TestCreateSupportTicketHandler_RejectsUnknownPriority(t *testing.T) {
	repo := &fakeTicketRepo{}
	actor := &user.User{ID: uuid.New(), Email: "member@example.com", Role: user.RoleMember}
	app := supportTicketApp(repo, actor)

	body, _ := json.Marshal(map[string]string{
		"subject":     "Billing question",
		"description": "Was I charged twice?",
		"priority":    "critical",
	})
	req := httptest.NewRequest("POST", "/support/tickets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, repo.tickets)
}

func TestCreateSupportTicketHandler_RequiresSession(t *testing.T) {
	app := supportTicketApp(&fakeTicketRepo{}, nil)

	body, _ := json.Marshal(map[string]string{
		"subject":     "Hello",
		"description": "No session here.",
	})
	req := httptest.NewRequest("POST", "/support/tickets", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
