package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/supportticket"
)

type SupportTicketRepository struct {
	db *gorm.DB
}

func NewSupportTicketRepository(db *gorm.DB) supportticket.Repository {
	return &SupportTicketRepository{db: db}
}

func (r *SupportTicketRepository) Get(ctx context.Context, id uuid.UUID) (*supportticket.Ticket, error) {
	entity := new(supportticket.Ticket)
	if err := r.db.WithContext(ctx).First(entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("support ticket", id)
		}
		return nil, fmt.Errorf("failed to load support ticket: %w", err)
	}
	return entity, nil
}

func (r *SupportTicketRepository) List(ctx context.Context, filter supportticket.ListFilter) ([]supportticket.Ticket, error) {
	var tickets []supportticket.Ticket
	query := r.db.WithContext(ctx).Model(&supportticket.Ticket{}).Order("created_at desc")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.UserID != uuid.Nil {
		query = query.Where("user_id = ?", filter.UserID)
	}

	err := query.Find(&tickets).Error
	return tickets, err
}

func (r *SupportTicketRepository) Create(ctx context.Context, entity *supportticket.Ticket) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *SupportTicketRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).Model(&supportticket.Ticket{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("support ticket", id)
	}
	return nil
}
