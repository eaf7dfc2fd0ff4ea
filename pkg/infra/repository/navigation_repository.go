package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/navigation"
)

type NavigationRepository struct {
	db *gorm.DB
}

func NewNavigationRepository(db *gorm.DB) navigation.Repository {
	return &NavigationRepository{db: db}
}

func (r *NavigationRepository) List(ctx context.Context) ([]navigation.Item, error) {
	var items []navigation.Item
	err := r.db.WithContext(ctx).Model(&navigation.Item{}).
		Order("display_order asc").
		Find(&items).Error
	return items, err
}

func (r *NavigationRepository) Get(ctx context.Context, id uuid.UUID) (*navigation.Item, error) {
	entity := new(navigation.Item)
	if err := r.db.WithContext(ctx).First(entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("navigation item", id)
		}
		return nil, fmt.Errorf("failed to load navigation item: %w", err)
	}
	return entity, nil
}

func (r *NavigationRepository) Create(ctx context.Context, item *navigation.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *NavigationRepository) Update(ctx context.Context, item *navigation.Item) error {
	result := r.db.WithContext(ctx).Save(item)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("navigation item", item.ID)
	}
	return nil
}

func (r *NavigationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&navigation.Item{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("navigation item", id)
	}
	return nil
}

func (r *NavigationRepository) SwapOrders(ctx context.Context, a, b *navigation.Item) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Model(&navigation.Item{}).Where("id = ?", a.ID).
		Update("display_order", a.Order).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Model(&navigation.Item{}).Where("id = ?", b.ID).
		Update("display_order", b.Order).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (r *NavigationRepository) ReparentChildren(ctx context.Context, parentID uuid.UUID, newParentID *uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&navigation.Item{}).
		Where("parent_id = ?", parentID).
		Update("parent_id", newParentID).Error
}
