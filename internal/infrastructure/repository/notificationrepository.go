package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gearguard/gearguard/internal/domain/notification"
	"github.com/gearguard/gearguard/internal/infrastructure/persistence/mappers"
	"github.com/gearguard/gearguard/internal/infrastructure/persistence/models"
	db "github.com/gearguard/gearguard/internal/shared/db"
	"github.com/gearguard/gearguard/internal/shared/mapper"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return n.SetID(model.ID)
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*notification.Notification, error) {
	if limit <= 0 || limit > db.MaxPageSize {
		limit = db.DefaultPageSize
	}

	var rows []*models.NotificationModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Scopes(db.NewestFirst()).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return mapper.MapSliceWithID(rows, r.mapper.ToDomain, notificationID)
}

func (r *NotificationRepository) ListUnreadByUser(ctx context.Context, userID uint) ([]*notification.Notification, error) {
	var rows []*models.NotificationModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND is_read = ?", userID, false).
		Scopes(db.NewestFirst()).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unread notifications: %w", err)
	}
	return mapper.MapSliceWithID(rows, r.mapper.ToDomain, notificationID)
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, n *notification.Notification) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationModel{}).
		Where("id = ?", n.ID()).
		Updates(map[string]any{
			"is_read": n.IsRead(),
			"read_at": toMilli(n.ReadAt()),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification as read: %w", result.Error)
	}
	return nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID uint, readAt time.Time) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": readAt.UnixMilli(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark all notifications as read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func notificationID(m *models.NotificationModel) uint { return m.ID }

func toMilli(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
