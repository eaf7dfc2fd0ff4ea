package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain/user"
	"github.com/caraudioevents/platform/pkg/infra/jwt"
	"github.com/caraudioevents/platform/pkg/middleware"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*user.User
}

func (r *fakeUserRepo) Get(_ context.Context, id uuid.UUID) (*user.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, assert.AnError
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*user.User, error) {
	return nil, assert.AnError
}

func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]user.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Create(_ context.Context, _ *user.User) error { return nil }

func (r *fakeUserRepo) Update(_ context.Context, _ *user.User) error { return nil }

func (r *fakeUserRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ string) error { return nil }

func TestAuthMiddleware_NoAuthorizationHeader(t *testing.T) {
	logger := logrus.New()
	jwtManager := jwt.NewJwtManager("test-secret")

	authMiddleware := middleware.NewAuthMiddleware(logger, jwtManager, &fakeUserRepo{})

	downstreamCalled := false
	app := fiber.New()
	app.Use(authMiddleware.Middleware())
	app.Get("/test", func(c *fiber.Ctx) error {
		downstreamCalled = true
		return c.SendString("OK")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, downstreamCalled)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	logger := logrus.New()
	jwtManager := jwt.NewJwtManager("test-secret")

	authMiddleware := middleware.NewAuthMiddleware(logger, jwtManager, &fakeUserRepo{})

	app := fiber.New()
	app.Use(authMiddleware.Middleware())
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_Success(t *testing.T) {
	logger := logrus.New()
	jwtManager := jwt.NewJwtManager("test-secret")

	userID := uuid.New()
	repo := &fakeUserRepo{users: map[uuid.UUID]*user.User{
		userID: {ID: userID, Email: "member@example.com", Role: user.RoleMember, Status: user.StatusActive},
	}}

	token, err := jwtManager.CreateToken(userID.String(), "member@example.com", time.Hour)
	require.NoError(t, err)

	authMiddleware := middleware.NewAuthMiddleware(logger, jwtManager, repo)

	var contextUser *user.User
	app := fiber.New()
	app.Use(authMiddleware.Middleware())
	app.Get("/test", func(c *fiber.Ctx) error {
		if u, ok := c.Locals(common.UserContextKey).(*user.User); ok {
			contextUser = u
		}
		return c.SendString("OK")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, contextUser)
	assert.Equal(t, userID, contextUser.ID)
}

func TestAdminAuthMiddleware_RejectsNonAdmin(t *testing.T) {
	logger := logrus.New()
	adminMiddleware := middleware.NewAdminAuthMiddleware(logger)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(common.UserContextKey, &user.User{
			ID:     uuid.New(),
			Role:   user.RoleMember,
			Status: user.StatusActive,
		})
		return c.Next()
	})
	app.Use(adminMiddleware.Middleware())
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminAuthMiddleware_RejectsSuspendedAdmin(t *testing.T) {
	logger := logrus.New()
	adminMiddleware := middleware.NewAdminAuthMiddleware(logger)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(common.UserContextKey, &user.User{
			ID:     uuid.New(),
			Role:   user.RoleAdmin,
			Status: user.StatusSuspended,
		})
		return c.Next()
	})
	app.Use(adminMiddleware.Middleware())
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminAuthMiddleware_AllowsActiveAdmin(t *testing.T) {
	logger := logrus.New()
	adminMiddleware := middleware.NewAdminAuthMiddleware(logger)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(common.UserContextKey, &user.User{
			ID:     uuid.New(),
			Role:   user.RoleAdmin,
			Status: user.StatusActive,
		})
		return c.Next()
	})
	app.Use(adminMiddleware.Middleware())
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
