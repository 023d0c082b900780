package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gearguard/gearguard/internal/domain/equipment"
	"github.com/gearguard/gearguard/internal/infrastructure/persistence/mappers"
	"github.com/gearguard/gearguard/internal/infrastructure/persistence/models"
	db "github.com/gearguard/gearguard/internal/shared/db"
	apperrors "github.com/gearguard/gearguard/internal/shared/errors"
)

type EquipmentRepository struct {
	db     *gorm.DB
	mapper mappers.EquipmentMapper
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{
		db:     db,
		mapper: mappers.NewEquipmentMapper(),
	}
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id uint) (*equipment.Equipment, error) {
	var model models.EquipmentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// GetByIDForUpdate reads the row with SELECT ... FOR UPDATE, so concurrent
// cascades on the same equipment queue behind the caller's transaction.
func (r *EquipmentRepository) GetByIDForUpdate(ctx context.Context, id uint) (*equipment.Equipment, error) {
	var model models.EquipmentModel
	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock equipment: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *EquipmentRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*equipment.Equipment, error) {
	result := make(map[uint]*equipment.Equipment, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []models.EquipmentModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get equipment by IDs: %w", err)
	}
	for i := range rows {
		e, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result[e.ID()] = e
	}
	return result, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, e *equipment.Equipment) error {
	model := r.mapper.ToModel(e)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("equipment serial number already exists", e.SerialNumber())
		}
		return fmt.Errorf("failed to create equipment: %w", err)
	}
	return e.SetID(model.ID)
}

func (r *EquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	model := r.mapper.ToModel(e)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.EquipmentModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update equipment: %w", result.Error)
	}

	// RowsAffected may be 0 on MySQL when the row already holds these values.

	return nil
}
