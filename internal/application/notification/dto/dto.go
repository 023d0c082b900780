package dto

import (
	"time"

	"github.com/gearguard/gearguard/internal/domain/notification"
	"github.com/gearguard/gearguard/internal/shared/mapper"
)

type NotificationDTO struct {
	ID                uint       `json:"id"`
	UserID            uint       `json:"userId"`
	Title             string     `json:"title"`
	Message           string     `json:"message"`
	Type              string     `json:"type"`
	IsRead            bool       `json:"isRead"`
	RelatedEntityType string     `json:"relatedEntityType,omitempty"`
	RelatedEntityID   *uint      `json:"relatedEntityId,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	ReadAt            *time.Time `json:"readAt,omitempty"`
	TimeAgo           string     `json:"timeAgo"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkAllAsReadResponse struct {
	Updated int64 `json:"updated"`
}

// ToNotificationDTO renders n as seen at now; now only feeds TimeAgo.
func ToNotificationDTO(n *notification.Notification, now time.Time) *NotificationDTO {
	if n == nil {
		return nil
	}
	return &NotificationDTO{
		ID:                n.ID(),
		UserID:            n.UserID(),
		Title:             n.Title(),
		Message:           n.Message(),
		Type:              n.Type().String(),
		IsRead:            n.IsRead(),
		RelatedEntityType: n.RelatedEntityType(),
		RelatedEntityID:   n.RelatedEntityID(),
		CreatedAt:         n.CreatedAt(),
		ReadAt:            n.ReadAt(),
		TimeAgo:           n.TimeAgo(now),
	}
}

func ToNotificationDTOs(items []*notification.Notification, now time.Time) []*NotificationDTO {
	if len(items) == 0 {
		return []*NotificationDTO{}
	}
	return mapper.MapSlice(items, func(n *notification.Notification) *NotificationDTO {
		return ToNotificationDTO(n, now)
	})
}
