package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/emailtemplate"
)

type EmailTemplateRepository struct {
	db *gorm.DB
}

func NewEmailTemplateRepository(db *gorm.DB) emailtemplate.Repository {
	return &EmailTemplateRepository{db: db}
}

func (r *EmailTemplateRepository) Get(ctx context.Context, id uuid.UUID) (*emailtemplate.Template, error) {
	entity := new(emailtemplate.Template)
	if err := r.db.WithContext(ctx).First(entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("email template", id)
		}
		return nil, fmt.Errorf("failed to load email template: %w", err)
	}
	return entity, nil
}

func (r *EmailTemplateRepository) GetByName(ctx context.Context, name string) (*emailtemplate.Template, error) {
	entity := new(emailtemplate.Template)
	if err := r.db.WithContext(ctx).First(entity, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "email template", Key: name}
		}
		return nil, fmt.Errorf("failed to load email template: %w", err)
	}
	return entity, nil
}

func (r *EmailTemplateRepository) List(ctx context.Context) ([]emailtemplate.Template, error) {
	var templates []emailtemplate.Template
	err := r.db.WithContext(ctx).Model(&emailtemplate.Template{}).
		Order("name asc").
		Find(&templates).Error
	return templates, err
}

func (r *EmailTemplateRepository) Create(ctx context.Context, template *emailtemplate.Template) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *EmailTemplateRepository) Update(ctx context.Context, template *emailtemplate.Template) error {
	result := r.db.WithContext(ctx).Save(template)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("email template", template.ID)
	}
	return nil
}

func (r *EmailTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&emailtemplate.Template{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("email template", id)
	}
	return nil
}
