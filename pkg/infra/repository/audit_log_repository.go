package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/caraudioevents/platform/pkg/domain/auditlog"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) auditlog.Repository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(ctx context.Context, entry *auditlog.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *AuditLogRepository) ListByTarget(ctx context.Context, targetType, targetID string) ([]auditlog.Entry, error) {
	var entries []auditlog.Entry
	err := r.db.WithContext(ctx).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Order("created_at desc").
		Find(&entries).Error
	return entries, err
}
