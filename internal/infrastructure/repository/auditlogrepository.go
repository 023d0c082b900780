package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gearguard/gearguard/internal/domain/audit"
	"github.com/gearguard/gearguard/internal/infrastructure/persistence/mappers"
	"github.com/gearguard/gearguard/internal/infrastructure/persistence/models"
	db "github.com/gearguard/gearguard/internal/shared/db"
	"github.com/gearguard/gearguard/internal/shared/mapper"
)

type AuditLogRepository struct {
	db     *gorm.DB
	mapper mappers.AuditLogMapper
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{
		db:     db,
		mapper: mappers.NewAuditLogMapper(),
	}
}

func (r *AuditLogRepository) Create(ctx context.Context, log *audit.AuditLog) error {
	model, err := r.mapper.ToModel(log)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return log.SetID(model.ID)
}

func (r *AuditLogRepository) ListRecent(ctx context.Context, limit int) ([]*audit.AuditLog, error) {
	if limit <= 0 || limit > db.MaxPageSize {
		limit = db.DefaultPageSize
	}
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Scopes(db.NewestFirst()).Limit(limit)
	})
}

func (r *AuditLogRepository) ListByEntity(ctx context.Context, entityType string, entityID uint) ([]*audit.AuditLog, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("entity_type = ? AND entity_id = ?", entityType, entityID).Scopes(db.NewestFirst())
	})
}

func (r *AuditLogRepository) ListByActor(ctx context.Context, actorID uint) ([]*audit.AuditLog, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("actor_id = ?", actorID).Scopes(db.NewestFirst())
	})
}

func (r *AuditLogRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*audit.AuditLog, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Scopes(db.CreatedBetween(from, to), db.NewestFirst())
	})
}

func (r *AuditLogRepository) List(ctx context.Context, page, pageSize int) ([]*audit.AuditLog, int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.AuditLogModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	logs, err := r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Scopes(db.NewestFirst(), db.Paginate(page, pageSize))
	})
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *AuditLogRepository) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*audit.AuditLog, error) {
	var rows []*models.AuditLogModel
	if err := scope(db.GetTxFromContext(ctx, r.db)).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return mapper.MapSliceWithID(rows, r.mapper.ToDomain, func(m *models.AuditLogModel) uint { return m.ID })
}
