// Package notification models per-user in-app notifications. The only state
// change after creation is flipping the read flag.
package notification

import (
	"fmt"
	"sync"
	"time"

	vo "github.com/gearguard/gearguard/internal/domain/notification/valueobjects"
)

type Notification struct {
	id                uint
	userID            uint
	notificationType  vo.NotificationType
	title             string
	message           string
	relatedEntityType string
	relatedEntityID   *uint
	isRead            bool
	readAt            *time.Time
	createdAt         time.Time
	mu                sync.RWMutex
}

func NewNotification(
	userID uint,
	notificationType vo.NotificationType,
	title string,
	message string,
	relatedEntityType string,
	relatedEntityID *uint,
	now time.Time,
) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if notificationType == "" {
		notificationType = vo.NotificationTypeInfo
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(message) > 1000 {
		return nil, fmt.Errorf("message exceeds maximum length of 1000 characters")
	}

	return &Notification{
		userID:            userID,
		notificationType:  notificationType,
		title:             title,
		message:           message,
		relatedEntityType: relatedEntityType,
		relatedEntityID:   relatedEntityID,
		createdAt:         now,
	}, nil
}

func ReconstructNotification(
	id uint,
	userID uint,
	notificationType vo.NotificationType,
	title string,
	message string,
	relatedEntityType string,
	relatedEntityID *uint,
	isRead bool,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}

	return &Notification{
		id:                id,
		userID:            userID,
		notificationType:  notificationType,
		title:             title,
		message:           message,
		relatedEntityType: relatedEntityType,
		relatedEntityID:   relatedEntityID,
		isRead:            isRead,
		readAt:            readAt,
		createdAt:         createdAt,
	}, nil
}

func (n *Notification) ID() uint {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.id
}

func (n *Notification) UserID() uint {
	return n.userID
}

func (n *Notification) Type() vo.NotificationType {
	return n.notificationType
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) RelatedEntityType() string {
	return n.relatedEntityType
}

func (n *Notification) RelatedEntityID() *uint {
	return n.relatedEntityID
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) IsRead() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.isRead
}

func (n *Notification) ReadAt() *time.Time {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.readAt
}

func (n *Notification) SetID(id uint) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkAsRead flips the read flag. Marking an already-read notification is a
// no-op and reports false.
func (n *Notification) MarkAsRead(now time.Time) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.isRead {
		return false
	}
	n.isRead = true
	n.readAt = &now
	return true
}

// TimeAgo renders the age of the notification at now for list views.
func (n *Notification) TimeAgo(now time.Time) string {
	return TimeAgo(n.createdAt, now)
}

// TimeAgo formats the distance between then and now as "Just now", "5m ago", "3h ago" or "2d ago".
func TimeAgo(then, now time.Time) string {
	d := now.Sub(then)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
