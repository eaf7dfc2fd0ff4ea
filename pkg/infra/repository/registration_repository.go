package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/registration"
)

type RegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) registration.Repository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Get(ctx context.Context, id uuid.UUID) (*registration.Registration, error) {
	entity := new(registration.Registration)
	if err := r.db.WithContext(ctx).First(entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("registration", id)
		}
		return nil, fmt.Errorf("failed to load registration: %w", err)
	}
	return entity, nil
}

func (r *RegistrationRepository) List(ctx context.Context, filter registration.ListFilter) ([]registration.Registration, error) {
	var registrations []registration.Registration
	query := r.db.WithContext(ctx).Model(&registration.Registration{}).Order("created_at desc")

	if filter.EventID != uuid.Nil {
		query = query.Where("event_id = ?", filter.EventID)
	}
	if filter.UserID != uuid.Nil {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	err := query.Find(&registrations).Error
	return registrations, err
}

func (r *RegistrationRepository) Create(ctx context.Context, entity *registration.Registration) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).Model(&registration.Registration{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("registration", id)
	}
	return nil
}
