package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/navigation"
	"github.com/caraudioevents/platform/pkg/infra/cache"
)

type fakeNavRepo struct {
	items     []navigation.Item
	swapCalls int
}

func (f *fakeNavRepo) List(_ context.Context) ([]navigation.Item, error) {
	return f.items, nil
}

func (f *fakeNavRepo) Get(_ context.Context, id uuid.UUID) (*navigation.Item, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, domain.NewNotFoundError("navigation item", id)
}

func (f *fakeNavRepo) Create(_ context.Context, item *navigation.Item) error {
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeNavRepo) Update(_ context.Context, _ *navigation.Item) error {
	return nil
}

func (f *fakeNavRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (f *fakeNavRepo) SwapOrders(_ context.Context, _, _ *navigation.Item) error {
	f.swapCalls++
	return nil
}

func (f *fakeNavRepo) ReparentChildren(_ context.Context, _ uuid.UUID, _ *uuid.UUID) error {
	return nil
}

func moveMenuApp(repo *fakeNavRepo, cacheClient *cache.Client) *fiber.App {
	handler := NewMoveMenuItemHandler(logrus.New(), repo, cacheClient)
	app := fiber.New()
	app.Post("/admin/menu/:item_id/move", handler.Handle)
	return app
}

func TestMoveMenuItemHandler_EdgeMoveIsNoOp(t *testing.T) {
	first := navigation.Item{ID: uuid.New(), Title: "Home", Order: 1, IsActive: true}
	second := navigation.Item{ID: uuid.New(), Title: "Events", Order: 2, IsActive: true}
	repo := &fakeNavRepo{items: []navigation.Item{first, second}}

	rdb, _ := redismock.NewClientMock()
	app := moveMenuApp(repo, cache.NewClientFromRedis(rdb))

	body, _ := json.Marshal(map[string]string{"direction": "up"})
	req := httptest.NewRequest("POST", "/admin/menu/"+first.ID.String()+"/move", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, repo.swapCalls)

	respBody, _ := io.ReadAll(resp.Body)
	var result struct {
		Moved bool `json:"moved"`
	}
	require.NoError(t, json.Unmarshal(respBody, &result))
	assert.False(t, result.Moved)
}

func TestMoveMenuItemHandler_SwapsWithPreviousSibling(t *testing.T) {
	first := navigation.Item{ID: uuid.New(), Title: "Home", Order: 1, IsActive: true}
	second := navigation.Item{ID: uuid.New(), Title: "Events", Order: 2, IsActive: true}
	repo := &fakeNavRepo{items: []navigation.Item{first, second}}

	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel(cache.MenuTreeKey).SetVal(1)
	app := moveMenuApp(repo, cache.NewClientFromRedis(rdb))

	body, _ := json.Marshal(map[string]string{"direction": "up"})
	req := httptest.NewRequest("POST", "/admin/menu/"+second.ID.String()+"/move", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, repo.swapCalls)
	assert.NoError(t, mock.ExpectationsWereMet())

	respBody, _ := io.ReadAll(resp.Body)
	var result struct {
		Moved bool            `json:"moved"`
		Item  navigation.Item `json:"item"`
	}
	require.NoError(t, json.Unmarshal(respBody, &result))
	assert.True(t, result.Moved)
	assert.Equal(t, 1, result.Item.Order)
}

func TestMoveMenuItemHandler_UnknownItem(t *testing.T) {
	repo := &fakeNavRepo{}
	rdb, _ := redismock.NewClientMock()
	app := moveMenuApp(repo, cache.NewClientFromRedis(rdb))

	body, _ := json.Marshal(map[string]string{"direction": "down"})
	req := httptest.NewRequest("POST", "/admin/menu/"+uuid.NewString()+"/move", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestMoveMenuItemHandler_RejectsUnknownDirection(t *testing.T) {
	repo := &fakeNavRepo{}
	rdb, _ := redismock.NewClientMock()
	app := moveMenuApp(repo, cache.NewClientFromRedis(rdb))

	body, _ := json.Marshal(map[string]string{"direction": "sideways"})
	req := httptest.NewRequest("POST", "/admin/menu/"+uuid.NewString()+"/move", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
