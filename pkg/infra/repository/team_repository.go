package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/team"
)

var ErrAlreadyTeamMember = errors.New("user is already a member of this team")

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) team.Repository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Get(ctx context.Context, id uuid.UUID) (*team.Team, error) {
	entity := new(team.Team)
	if err := r.db.WithContext(ctx).First(entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("team", id)
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	return entity, nil
}

func (r *TeamRepository) List(ctx context.Context, offset, limit int) ([]team.Team, error) {
	var teams []team.Team
	query := r.db.WithContext(ctx).Model(&team.Team{}).Order("name asc")
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}
	err := query.Find(&teams).Error
	return teams, err
}

func (r *TeamRepository) Create(ctx context.Context, entity *team.Team) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *TeamRepository) Update(ctx context.Context, entity *team.Team) error {
	result := r.db.WithContext(ctx).Save(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("team", entity.ID)
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Where("team_id = ?", id).Delete(&team.Membership{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&team.Team{}, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (r *TeamRepository) AddMember(ctx context.Context, membership *team.Membership) error {
	if err := r.db.WithContext(ctx).Create(membership).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return ErrAlreadyTeamMember
		}
		return err
	}
	return nil
}

func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&team.Membership{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("membership", userID)
	}
	return nil
}

func (r *TeamRepository) ListMembers(ctx context.Context, teamID uuid.UUID) ([]team.Membership, error) {
	var members []team.Membership
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("joined_at asc").
		Find(&members).Error
	return members, err
}
