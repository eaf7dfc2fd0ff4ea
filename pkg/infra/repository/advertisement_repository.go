package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/advertisement"
)

type AdvertisementRepository struct {
	db *gorm.DB
}

func NewAdvertisementRepository(db *gorm.DB) advertisement.Repository {
	return &AdvertisementRepository{db: db}
}

func (r *AdvertisementRepository) Get(ctx context.Context, id uuid.UUID) (*advertisement.Advertisement, error) {
	entity := new(advertisement.Advertisement)
	if err := r.db.WithContext(ctx).First(entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("advertisement", id)
		}
		return nil, fmt.Errorf("failed to load advertisement: %w", err)
	}
	return entity, nil
}

func (r *AdvertisementRepository) List(ctx context.Context, placement string) ([]advertisement.Advertisement, error) {
	var ads []advertisement.Advertisement
	query := r.db.WithContext(ctx).Model(&advertisement.Advertisement{}).Order("created_at desc")

	if placement != "" {
		query = query.Where("placement = ?", placement)
	}

	err := query.Find(&ads).Error
	return ads, err
}

func (r *AdvertisementRepository) Create(ctx context.Context, ad *advertisement.Advertisement) error {
	return r.db.WithContext(ctx).Create(ad).Error
}

func (r *AdvertisementRepository) Update(ctx context.Context, ad *advertisement.Advertisement) error {
	result := r.db.WithContext(ctx).Save(ad)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("advertisement", ad.ID)
	}
	return nil
}

func (r *AdvertisementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&advertisement.Advertisement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("advertisement", id)
	}
	return nil
}
