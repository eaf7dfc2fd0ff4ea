package ratelimit

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	domain "github.com/caraudioevents/platform/pkg/domain/ratelimit"
)

// Result is the outcome of one admission check.
type Result struct {
	Allowed    bool      `json:"allowed"`
	Limit      int       `json:"limit"`
	Remaining  int       `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
	RetryAfter int       `json:"retry_after,omitempty"`
}

// Config is supplied at construction. The effective key for an identifier is
// "<KeyPrefix>:<identifier>".
type Config struct {
	MaxRequests int
	Window      time.Duration
	KeyPrefix   string
	// FailOpen allows the request when the window store itself errors.
	// The limiter is an admission-control hint, not a security boundary;
	// deployments that prefer strict enforcement set this to false.
	FailOpen bool
}

type LimiterOpts struct {
	TimeProvider func() time.Time
	UuidProvider func() uuid.UUID
}

// Limiter counts requests per caller identity over fixed windows persisted in
// the rate_limit_windows table.
//
// The window update is read-then-write, not atomic: two concurrent requests
// for the same key can both observe the same pre-increment count and both be
// admitted, exceeding the limit by up to (concurrency - 1) per window. That
// is acceptable for coarse abuse protection; back IncrementCount with an
// atomic UPDATE if a deployment needs stricter accounting.
type Limiter struct {
	repo         domain.Repository
	logger       *logrus.Logger
	config       Config
	timeProvider func() time.Time
	uuidProvider func() uuid.UUID
}

func NewLimiter(repo domain.Repository, logger *logrus.Logger, config Config, opts *LimiterOpts) (*Limiter, error) {
	if config.MaxRequests <= 0 {
		return nil, fmt.Errorf("max requests must be positive, got %d", config.MaxRequests)
	}
	if config.Window <= 0 {
		return nil, fmt.Errorf("window must be positive, got %s", config.Window)
	}

	timeProvider := time.Now
	uuidProvider := uuid.New
	if opts != nil && opts.TimeProvider != nil {
		timeProvider = opts.TimeProvider
	}
	if opts != nil && opts.UuidProvider != nil {
		uuidProvider = opts.UuidProvider
	}

	return &Limiter{
		repo:         repo,
		logger:       logger,
		config:       config,
		timeProvider: timeProvider,
		uuidProvider: uuidProvider,
	}, nil
}

// Check records one request for identifier and reports whether it is admitted.
// It never returns an error: store failures resolve to the configured
// fail-open or fail-closed result.
func (l *Limiter) Check(ctx context.Context, identifier string) Result {
	now := l.timeProvider()
	key := fmt.Sprintf("%s:%s", l.config.KeyPrefix, identifier)

	l.cleanup(ctx, key, now)

	window, err := l.repo.CurrentWindow(ctx, key, now)
	if err != nil {
		return l.failureResult(now, err)
	}

	if window == nil {
		created := &domain.Window{
			ID:          l.uuidProvider(),
			Key:         key,
			Count:       1,
			WindowStart: now,
			WindowEnd:   now.Add(l.config.Window),
		}
		if err := l.repo.Create(ctx, created); err != nil {
			return l.failureResult(now, err)
		}
		return Result{
			Allowed:   true,
			Limit:     l.config.MaxRequests,
			Remaining: l.config.MaxRequests - 1,
			ResetAt:   created.WindowEnd,
		}
	}

	if window.Count >= l.config.MaxRequests {
		return Result{
			Allowed:    false,
			Limit:      l.config.MaxRequests,
			Remaining:  0,
			ResetAt:    window.WindowEnd,
			RetryAfter: retryAfterSeconds(window.WindowEnd, now),
		}
	}

	window.Count++
	if err := l.repo.IncrementCount(ctx, window); err != nil {
		return l.failureResult(now, err)
	}

	remaining := l.config.MaxRequests - window.Count
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   window.Count <= l.config.MaxRequests,
		Limit:     l.config.MaxRequests,
		Remaining: remaining,
		ResetAt:   window.WindowEnd,
	}
}

// cleanup sweeps windows that expired more than two window lengths ago.
// Failures are logged and swallowed.
func (l *Limiter) cleanup(ctx context.Context, key string, now time.Time) {
	cutoff := now.Add(-2 * l.config.Window)
	if err := l.repo.DeleteExpiredBefore(ctx, key, cutoff); err != nil {
		l.logger.WithError(err).WithField("key", key).Debug("rate limit window cleanup failed")
	}
}

func (l *Limiter) failureResult(now time.Time, err error) Result {
	if l.config.FailOpen {
		l.logger.WithError(err).Warn("rate limit store unavailable, failing open")
		return Result{
			Allowed:   true,
			Limit:     l.config.MaxRequests,
			Remaining: l.config.MaxRequests,
			ResetAt:   now.Add(l.config.Window),
		}
	}
	l.logger.WithError(err).Warn("rate limit store unavailable, failing closed")
	return Result{
		Allowed:    false,
		Limit:      l.config.MaxRequests,
		Remaining:  0,
		ResetAt:    now.Add(l.config.Window),
		RetryAfter: retryAfterSeconds(now.Add(l.config.Window), now),
	}
}

func retryAfterSeconds(windowEnd, now time.Time) int {
	secs := int(math.Ceil(windowEnd.Sub(now).Seconds()))
	if secs < 1 {
		secs = 1
	}
	return secs
}
