package ratelimit

import (
	"context"
	"time"
)

type Repository interface {
	// CurrentWindow returns the most recent window for key with
	// window_end >= now, or nil when none exists.
	CurrentWindow(ctx context.Context, key string, now time.Time) (*Window, error)
	Create(ctx context.Context, window *Window) error
	IncrementCount(ctx context.Context, window *Window) error
	// DeleteExpiredBefore removes stale windows whose window_end is older
	// than cutoff. Used by the limiter's opportunistic cleanup sweep.
	DeleteExpiredBefore(ctx context.Context, key string, cutoff time.Time) error
}
