package mappers

import (
	"github.com/gearguard/gearguard/internal/domain/notification"
	vo "github.com/gearguard/gearguard/internal/domain/notification/valueobjects"
	"github.com/gearguard/gearguard/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:                n.ID(),
		UserID:            n.UserID(),
		Type:              n.Type().String(),
		Title:             n.Title(),
		Message:           n.Message(),
		RelatedEntityType: n.RelatedEntityType(),
		RelatedEntityID:   n.RelatedEntityID(),
		IsRead:            n.IsRead(),
		ReadAt:            toMilliPtr(n.ReadAt()),
		CreatedAt:         n.CreatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		vo.NotificationType(model.Type),
		model.Title,
		model.Message,
		model.RelatedEntityType,
		model.RelatedEntityID,
		model.IsRead,
		fromMilliPtr(model.ReadAt),
		fromMilli(model.CreatedAt),
	)
}
