package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/caraudioevents/platform/pkg/domain/ratelimit"
)

type RateLimitRepository struct {
	db *gorm.DB
}

func NewRateLimitRepository(db *gorm.DB) ratelimit.Repository {
	return &RateLimitRepository{db: db}
}

func (r *RateLimitRepository) CurrentWindow(ctx context.Context, key string, now time.Time) (*ratelimit.Window, error) {
	entity := new(ratelimit.Window)
	err := r.db.WithContext(ctx).
		Where("key = ? AND window_end >= ?", key, now).
		Order("window_end desc").
		First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entity, nil
}

func (r *RateLimitRepository) Create(ctx context.Context, window *ratelimit.Window) error {
	return r.db.WithContext(ctx).Create(window).Error
}

func (r *RateLimitRepository) IncrementCount(ctx context.Context, window *ratelimit.Window) error {
	return r.db.WithContext(ctx).Model(&ratelimit.Window{}).
		Where("id = ?", window.ID).
		Update("request_count", window.Count).Error
}

func (r *RateLimitRepository) DeleteExpiredBefore(ctx context.Context, key string, cutoff time.Time) error {
	return r.db.WithContext(ctx).
		Where("key = ? AND window_end < ?", key, cutoff).
		Delete(&ratelimit.Window{}).Error
}
