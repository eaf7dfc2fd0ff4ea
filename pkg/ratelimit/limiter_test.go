package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/caraudioevents/platform/pkg/domain/ratelimit"
)

type fakeWindowRepo struct {
	windows map[string][]*domain.Window
	failing bool
}

func newFakeWindowRepo() *fakeWindowRepo {
	return &fakeWindowRepo{windows: make(map[string][]*domain.Window)}
}

func (r *fakeWindowRepo) CurrentWindow(_ context.Context, key string, now time.Time) (*domain.Window, error) {
	if r.failing {
		return nil, errors.New("store unavailable")
	}
	var latest *domain.Window
	for _, w := range r.windows[key] {
		if w.WindowEnd.Before(now) {
			continue
		}
		if latest == nil || w.WindowEnd.After(latest.WindowEnd) {
			latest = w
		}
	}
	return latest, nil
}

func (r *fakeWindowRepo) Create(_ context.Context, window *domain.Window) error {
	if r.failing {
		return errors.New("store unavailable")
	}
	r.windows[window.Key] = append(r.windows[window.Key], window)
	return nil
}

func (r *fakeWindowRepo) IncrementCount(_ context.Context, window *domain.Window) error {
	if r.failing {
		return errors.New("store unavailable")
	}
	for _, w := range r.windows[window.Key] {
		if w.ID == window.ID {
			w.Count = window.Count
			return nil
		}
	}
	return errors.New("window not found")
}

func (r *fakeWindowRepo) DeleteExpiredBefore(_ context.Context, key string, cutoff time.Time) error {
	if r.failing {
		return errors.New("store unavailable")
	}
	kept := r.windows[key][:0]
	for _, w := range r.windows[key] {
		if !w.WindowEnd.Before(cutoff) {
			kept = append(kept, w)
		}
	}
	r.windows[key] = kept
	return nil
}

func newTestLimiter(t *testing.T, repo domain.Repository, max int, window time.Duration, failOpen bool, clock *time.Time) *Limiter {
	t.Helper()
	limiter, err := NewLimiter(repo, logrus.New(), Config{
		MaxRequests: max,
		Window:      window,
		KeyPrefix:   "test",
		FailOpen:    failOpen,
	}, &LimiterOpts{
		TimeProvider: func() time.Time { return *clock },
		UuidProvider: uuid.New,
	})
	require.NoError(t, err)
	return limiter
}

func TestLimiter_AllowsUnderLimit(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(t, newFakeWindowRepo(), 5, time.Minute, true, &now)

	for i := 0; i < 5; i++ {
		res := limiter.Check(context.Background(), "user-1")
		assert.True(t, res.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 5, res.Limit)
		assert.Equal(t, 4-i, res.Remaining)
	}
}

func TestLimiter_BlocksOverLimit(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(t, newFakeWindowRepo(), 3, time.Minute, true, &now)

	for i := 0; i < 3; i++ {
		limiter.Check(context.Background(), "user-1")
	}

	res := limiter.Check(context.Background(), "user-1")
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.Positive(t, res.RetryAfter)
	assert.LessOrEqual(t, res.RetryAfter, 60)
}

func TestLimiter_WindowReset(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(t, newFakeWindowRepo(), 2, time.Minute, true, &now)

	limiter.Check(context.Background(), "user-1")
	limiter.Check(context.Background(), "user-1")
	res := limiter.Check(context.Background(), "user-1")
	assert.False(t, res.Allowed)

	now = now.Add(61 * time.Second)
	res = limiter.Check(context.Background(), "user-1")
	assert.True(t, res.Allowed)
	assert.Equal(t, 1, res.Remaining)
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(t, newFakeWindowRepo(), 1, time.Minute, true, &now)

	assert.True(t, limiter.Check(context.Background(), "user-1").Allowed)
	assert.False(t, limiter.Check(context.Background(), "user-1").Allowed)
	assert.True(t, limiter.Check(context.Background(), "user-2").Allowed)
}

func TestLimiter_FailOpen(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeWindowRepo()
	repo.failing = true
	limiter := newTestLimiter(t, repo, 3, time.Minute, true, &now)

	res := limiter.Check(context.Background(), "user-1")
	assert.True(t, res.Allowed)
	assert.Equal(t, 3, res.Remaining)
}

func TestLimiter_FailClosed(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeWindowRepo()
	repo.failing = true
	limiter := newTestLimiter(t, repo, 3, time.Minute, false, &now)

	res := limiter.Check(context.Background(), "user-1")
	assert.False(t, res.Allowed)
	assert.Positive(t, res.RetryAfter)
}

func TestLimiter_CleanupRemovesStaleWindows(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeWindowRepo()
	limiter := newTestLimiter(t, repo, 3, time.Minute, true, &now)

	limiter.Check(context.Background(), "user-1")
	require.Len(t, repo.windows["test:user-1"], 1)

	// Two full windows later the old row is past the cleanup cutoff.
	now = now.Add(3*time.Minute + time.Second)
	limiter.Check(context.Background(), "user-1")
	assert.Len(t, repo.windows["test:user-1"], 1)
}

func TestNewLimiter_RejectsInvalidConfig(t *testing.T) {
	_, err := NewLimiter(newFakeWindowRepo(), logrus.New(), Config{MaxRequests: 0, Window: time.Minute}, nil)
	assert.Error(t, err)

	_, err = NewLimiter(newFakeWindowRepo(), logrus.New(), Config{MaxRequests: 1, Window: 0}, nil)
	assert.Error(t, err)
}
