package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/directory"
)

type DirectoryRepository struct {
	db *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) directory.Repository {
	return &DirectoryRepository{db: db}
}

func (r *DirectoryRepository) Get(ctx context.Context, id uuid.UUID) (*directory.Listing, error) {
	entity := new(directory.Listing)
	if err := r.db.WithContext(ctx).First(entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("listing", id)
		}
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}
	return entity, nil
}

func (r *DirectoryRepository) List(ctx context.Context, category string, approvedOnly bool) ([]directory.Listing, error) {
	var listings []directory.Listing
	query := r.db.WithContext(ctx).Model(&directory.Listing{}).Order("name asc")

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if approvedOnly {
		query = query.Where("is_approved = ?", true)
	}

	err := query.Find(&listings).Error
	return listings, err
}

func (r *DirectoryRepository) Create(ctx context.Context, listing *directory.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *DirectoryRepository) Update(ctx context.Context, listing *directory.Listing) error {
	result := r.db.WithContext(ctx).Save(listing)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("listing", listing.ID)
	}
	return nil
}

func (r *DirectoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&directory.Listing{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("listing", id)
	}
	return nil
}
