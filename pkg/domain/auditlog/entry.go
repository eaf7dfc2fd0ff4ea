package auditlog

import (
	"time"

	"github.com/google/uuid"
)

// Entry is an insert-only audit record. Writes are best effort: a failed
// audit insert never fails the request that produced it.
type Entry struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ActorID    uuid.UUID `json:"actor_id" gorm:"type:uuid;index"`
	ActorEmail string    `json:"actor_email"`
	Action     string    `json:"action" gorm:"index"`
	TargetType string    `json:"target_type"`
	TargetID   string    `json:"target_id" gorm:"index"`
	Detail     string    `json:"detail"`
	IPAddress  string    `json:"ip_address"`
	CreatedAt  time.Time `json:"created_at"`
}

func (e Entry) TableName() string {
	return "public.audit_logs"
}
