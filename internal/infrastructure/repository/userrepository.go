package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gearguard/gearguard/internal/domain/team"
	"github.com/gearguard/gearguard/internal/domain/user"
	"github.com/gearguard/gearguard/internal/infrastructure/persistence/mappers"
	"github.com/gearguard/gearguard/internal/infrastructure/persistence/models"
	db "github.com/gearguard/gearguard/internal/shared/db"
	apperrors "github.com/gearguard/gearguard/internal/shared/errors"
	"github.com/gearguard/gearguard/internal/shared/mapper"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return mappers.UserToDomain(&model), nil
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
	result := make(map[uint]*user.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get users by IDs: %w", err)
	}
	for i := range rows {
		result[rows[i].ID] = mappers.UserToDomain(&rows[i])
	}
	return result, nil
}

func (r *UserRepository) ListActiveByRoles(ctx context.Context, roles ...user.Role) ([]*user.User, error) {
	query := db.GetTxFromContext(ctx, r.db).Where("active = ?", true)
	if len(roles) > 0 {
		names := make([]string, len(roles))
		for i, role := range roles {
			names[i] = role.String()
		}
		query = query.Where("role IN ?", names)
	}

	var rows []models.UserModel
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}
	return mapper.MapSlice(rows, func(m models.UserModel) *user.User {
		return mappers.UserToDomain(&m)
	}), nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("email already exists", u.Email())
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return u.SetID(model.ID)
}

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, id uint) (*team.Team, error) {
	var model models.TeamModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return mappers.TeamToDomain(&model), nil
}

func (r *TeamRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*team.Team, error) {
	result := make(map[uint]*team.Team, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []models.TeamModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get teams by IDs: %w", err)
	}
	for i := range rows {
		result[rows[i].ID] = mappers.TeamToDomain(&rows[i])
	}
	return result, nil
}

func (r *TeamRepository) Create(ctx context.Context, t *team.Team) error {
	model := mappers.TeamToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("team name already exists", t.Name())
		}
		return fmt.Errorf("failed to create team: %w", err)
	}
	return t.SetID(model.ID)
}
