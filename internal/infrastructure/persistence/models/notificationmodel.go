package models

import "github.com/gearguard/gearguard/internal/shared/constants"

type NotificationModel struct {
	ID                uint   `gorm:"primaryKey"`
	UserID            uint   `gorm:"not null;index:idx_notification_user_read,priority:1"`
	Type              string `gorm:"size:30;not null"`
	Title             string `gorm:"size:200;not null"`
	Message           string `gorm:"size:1000"`
	RelatedEntityType string `gorm:"size:50"`
	RelatedEntityID   *uint
	IsRead            bool `gorm:"not null;default:false;index:idx_notification_user_read,priority:2"`
	ReadAt            *int64
	CreatedAt         int64 `gorm:"not null;index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
