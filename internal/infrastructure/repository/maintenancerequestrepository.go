package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/gearguard/gearguard/internal/domain/maintenance"
	vo "github.com/gearguard/gearguard/internal/domain/maintenance/valueobjects"
	"github.com/gearguard/gearguard/internal/infrastructure/persistence/mappers"
	"github.com/gearguard/gearguard/internal/infrastructure/persistence/models"
	"github.com/gearguard/gearguard/internal/shared/biztime"
	db "github.com/gearguard/gearguard/internal/shared/db"
	apperrors "github.com/gearguard/gearguard/internal/shared/errors"
)

// boardOrderClause sorts by stage column, then priority (highest first), then newest.
var boardOrderClause = buildBoardOrderClause()

func buildBoardOrderClause() string {
	var b strings.Builder
	b.WriteString("CASE stage")
	for _, s := range vo.AllStages() {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", s, s.BoardPosition())
	}
	b.WriteString(" ELSE 99 END ASC, CASE priority")
	for _, p := range vo.AllPriorities() {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", p, p.Rank())
	}
	b.WriteString(" ELSE 0 END DESC, created_at DESC, id DESC")
	return b.String()
}

type MaintenanceRequestRepository struct {
	db     *gorm.DB
	mapper mappers.MaintenanceRequestMapper
}

func NewMaintenanceRequestRepository(db *gorm.DB) *MaintenanceRequestRepository {
	return &MaintenanceRequestRepository{
		db:     db,
		mapper: mappers.NewMaintenanceRequestMapper(),
	}
}

func (r *MaintenanceRequestRepository) Create(ctx context.Context, request *maintenance.Request) error {
	model := r.mapper.ToModel(request)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create maintenance request: %w", err)
	}

	return request.SetID(model.ID)
}

func (r *MaintenanceRequestRepository) GetByID(ctx context.Context, id uint) (*maintenance.Request, error) {
	var model models.MaintenanceRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get maintenance request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// Update writes every column, guarded by the version the aggregate was loaded with.
// Each mutation on the aggregate bumps its version by one, so the stored row
// must still hold version-1.
func (r *MaintenanceRequestRepository) Update(ctx context.Context, request *maintenance.Request) error {
	model := r.mapper.ToModel(request)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MaintenanceRequestModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update maintenance request: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := tx.Model(&models.MaintenanceRequestModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check maintenance request: %w", err)
	}
	if count == 0 {
		return apperrors.NewNotFoundError("maintenance request not found", fmt.Sprintf("id=%d", model.ID))
	}
	return apperrors.NewConflictError("maintenance request was modified concurrently", fmt.Sprintf("id=%d", model.ID))
}

func (r *MaintenanceRequestRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.MaintenanceRequestModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete maintenance request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("maintenance request not found", fmt.Sprintf("id=%d", id))
	}
	return nil
}

func (r *MaintenanceRequestRepository) List(ctx context.Context, filter maintenance.Filter) ([]*maintenance.Request, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.MaintenanceRequestModel{})

	if len(filter.Stages) > 0 {
		query = query.Where("stage IN ?", stageStrings(filter.Stages))
	}
	if filter.TeamID != nil {
		query = query.Where("assigned_team_id = ?", *filter.TeamID)
	}
	if filter.AssignedToID != nil {
		query = query.Where("assigned_to_id = ?", *filter.AssignedToID)
	}
	if filter.OverdueOnly {
		query = query.Where("is_overdue = ?", true)
	}
	if filter.UrgentOnly {
		query = query.
			Where("stage IN ?", stageStrings(vo.PendingStages())).
			Where("is_overdue = ? OR priority = ?", true, vo.PriorityCritical.String())
	}
	if filter.ScheduledFrom != nil {
		query = query.Where("scheduled_date >= ?", biztime.FormatDate(*filter.ScheduledFrom))
	}
	if filter.ScheduledTo != nil {
		query = query.Where("scheduled_date <= ?", biztime.FormatDate(*filter.ScheduledTo))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []models.MaintenanceRequestModel
	if err := query.Order(boardOrderClause).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list maintenance requests: %w", err)
	}

	requests := make([]*maintenance.Request, 0, len(rows))
	for i := range rows {
		req, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *MaintenanceRequestRepository) CountByStage(ctx context.Context) (map[vo.Stage]int64, error) {
	var rows []struct {
		Stage string
		Total int64
	}
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.MaintenanceRequestModel{}).
		Select("stage, COUNT(*) AS total").
		Group("stage").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count maintenance requests by stage: %w", err)
	}

	counts := make(map[vo.Stage]int64, len(vo.AllStages()))
	for _, s := range vo.AllStages() {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[vo.Stage(row.Stage)] = row.Total
	}
	return counts, nil
}

func (r *MaintenanceRequestRepository) CountOverdue(ctx context.Context) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.MaintenanceRequestModel{}).
		Where("is_overdue = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count overdue maintenance requests: %w", err)
	}
	return count, nil
}

func (r *MaintenanceRequestRepository) CountCompletedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.MaintenanceRequestModel{}).
		Where("completed_at >= ? AND completed_at <= ?", from.UnixMilli(), to.UnixMilli()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count completed maintenance requests: %w", err)
	}
	return count, nil
}

func stageStrings(stages []vo.Stage) []string {
	out := make([]string, len(stages))
	for i, s := range stages {
		out[i] = s.String()
	}
	return out
}
