package ratelimit

import (
	"time"

	"github.com/google/uuid"
)

// Window is one fixed-window counter row. At most one unexpired row per key
// is authoritative; rows whose WindowEnd is in the past are stale and ignored.
// The table is owned exclusively by the rate limiter.
type Window struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key         string    `gorm:"index:idx_rl_key_end"`
	Count       int       `gorm:"column:request_count"`
	WindowStart time.Time
	WindowEnd   time.Time `gorm:"index:idx_rl_key_end"`
}

func (w Window) TableName() string {
	return "public.rate_limit_windows"
}
