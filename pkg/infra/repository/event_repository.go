package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/event"
	"github.com/caraudioevents/platform/pkg/domain/payment"
	"github.com/caraudioevents/platform/pkg/domain/registration"
)

var ErrEventHasRegistrations = errors.New("event has registrations attached")

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) event.Repository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Get(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	entity := new(event.Event)
	if err := r.db.WithContext(ctx).First(entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("event", id)
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	return entity, nil
}

func (r *EventRepository) List(ctx context.Context, filter event.ListFilter) ([]event.Event, error) {
	var events []event.Event
	query := r.db.WithContext(ctx).Model(&event.Event{}).Order("start_date asc")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.EventType != "" {
		query = query.Where("event_type = ?", filter.EventType)
	}
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}

	err := query.Find(&events).Error
	return events, err
}

func (r *EventRepository) Create(ctx context.Context, entity *event.Event) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *EventRepository) Update(ctx context.Context, entity *event.Event) error {
	result := r.db.WithContext(ctx).Save(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("event", entity.ID)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Refuse to delete an event with registrations attached.
	var count int64
	if err := r.db.WithContext(ctx).Model(&registration.Registration{}).
		Where("event_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEventHasRegistrations
	}

	result := r.db.WithContext(ctx).Delete(&event.Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("event", id)
	}
	return nil
}

func (r *EventRepository) Stats(ctx context.Context, id uuid.UUID) (*event.Stats, error) {
	stats := &event.Stats{EventID: id}

	if err := r.db.WithContext(ctx).Model(&registration.Registration{}).
		Where("event_id = ?", id).
		Count(&stats.TotalRegistrations).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&registration.Registration{}).
		Where("event_id = ? AND status = ?", id, registration.StatusConfirmed).
		Count(&stats.Confirmed).Error; err != nil {
		return nil, err
	}

	var cents int64
	err := r.db.WithContext(ctx).Model(&payment.Payment{}).
		Joins("JOIN public.registrations ON public.registrations.id = public.payments.registration_id").
		Where("public.registrations.event_id = ?", id).
		Select("COALESCE(SUM(public.payments.amount), 0)").
		Scan(&cents).Error
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = float64(cents) / 100

	return stats, nil
}
