package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/user"
)

type fakeUserStore struct {
	users         map[uuid.UUID]*user.User
	statusUpdates map[uuid.UUID]string
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:         make(map[uuid.UUID]*user.User),
		statusUpdates: make(map[uuid.UUID]string),
	}
}

func (f *fakeUserStore) Get(_ context.Context, id uuid.UUID) (*user.User, error) {
	entity, ok := f.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("user", id)
	}
	return entity, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*user.User, error) {
	return nil, &domain.NotFoundError{Entity: "user", Key: email}
}

func (f *fakeUserStore) List(_ context.Context, _, _ int) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserStore) Create(_ context.Context, entity *user.User) error {
	f.users[entity.ID] = entity
	return nil
}

func (f *fakeUserStore) Update(_ context.Context, entity *user.User) error {
	f.users[entity.ID] = entity
	return nil
}

func (f *fakeUserStore) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	f.statusUpdates[id] = status
	return nil
}

func userStatusApp(store *fakeUserStore, actor *user.User) *fiber.App {
	handler := NewUpdateUserStatusHandler(logrus.New(), store, noopAudit{})
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(common.UserContextKey, actor)
		return c.Next()
	})
	app.Patch("/admin/users/:user_id/status", handler.Handle)
	return app
}

func TestUpdateUserStatusHandler_RejectsUnknownStatusValue(t *testing.T) {
	store := newFakeUserStore()
	admin := &user.User{ID: uuid.New(), Email: "admin@example.com", Role: user.RoleAdmin, Status: user.StatusActive}
	target := &user.User{ID: uuid.New(), Email: "member@example.com", Role: user.RoleMember, Status: user.StatusActive}
	store.users[target.ID] = target

	app := userStatusApp(store, admin)

	body, _ := json.Marshal(map[string]string{"status": "deleted"})
	req := httptest.NewRequest("PATCH", "/admin/users/"+target.ID.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, store.statusUpdates)
}

func TestUpdateUserStatusHandler_RejectsOwnStatusChange(t *testing.T) {
	store := newFakeUserStore()
	admin := &user.User{ID: uuid.New(), Email: "admin@example.com", Role: user.RoleAdmin, Status: user.StatusActive}
	store.users[admin.ID] = admin

	app := userStatusApp(store, admin)

	body, _ := json.Marshal(map[string]string{"status": user.StatusSuspended})
	req := httptest.NewRequest("PATCH", "/admin/users/"+admin.ID.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Empty(t, store.statusUpdates)
}

func TestUpdateUserStatusHandler_SuspendsMember(t *testing.T) {
	store := newFakeUserStore()
	admin := &user.User{ID: uuid.New(), Email: "admin@example.com", Role: user.RoleAdmin, Status: user.StatusActive}
	target := &user.User{ID: uuid.New(), Email: "member@example.com", Role: user.RoleMember, Status: user.StatusActive}
	store.users[target.ID] = target

	app := userStatusApp(store, admin)

	body, _ := json.Marshal(map[string]string{"status": user.StatusSuspended, "reason": "abuse reports"})
	req := httptest.NewRequest("PATCH", "/admin/users/"+target.ID.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, user.StatusSuspended, store.statusUpdates[target.ID])
}

func TestUpdateUserStatusHandler_UnknownTarget(t *testing.T) {
	store := newFakeUserStore()
	admin := &user.User{ID: uuid.New(), Email: "admin@example.com", Role: user.RoleAdmin, Status: user.StatusActive}

	app := userStatusApp(store, admin)

	body, _ := json.Marshal(map[string]string{"status": user.StatusBanned})
	req := httptest.NewRequest("PATCH", "/admin/users/"+uuid.NewString()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
