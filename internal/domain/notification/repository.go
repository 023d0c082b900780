package notification

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, notification *Notification) error
	// GetByID returns nil, nil when the notification does not exist.
	GetByID(ctx context.Context, id uint) (*Notification, error)
	ListByUser(ctx context.Context, userID uint, limit int) ([]*Notification, error)
	ListUnreadByUser(ctx context.Context, userID uint) ([]*Notification, error)
	// CountUnread always reads the store; callers rely on it reflecting every prior write.
	CountUnread(ctx context.Context, userID uint) (int64, error)
	MarkAsRead(ctx context.Context, notification *Notification) error
	// MarkAllAsRead stamps every unread row of userID with readAt and returns the number of rows that changed.
	MarkAllAsRead(ctx context.Context, userID uint, readAt time.Time) (int64, error)
}
