package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/gearguard/gearguard/internal/domain/notification"
	"github.com/gearguard/gearguard/internal/domain/user"
	"github.com/gearguard/gearguard/internal/infrastructure/email"
)

type mockNotificationRepository struct {
	CreateFunc           func(ctx context.Context, n *notification.Notification) error
	GetByIDFunc          func(ctx context.Context, id uint) (*notification.Notification, error)
	ListByUserFunc       func(ctx context.Context, userID uint, limit int) ([]*notification.Notification, error)
	ListUnreadByUserFunc func(ctx context.Context, userID uint) ([]*notification.Notification, error)
	CountUnreadFunc      func(ctx context.Context, userID uint) (int64, error)
	MarkAsReadFunc       func(ctx context.Context, n *notification.Notification) error
	MarkAllAsReadFunc    func(ctx context.Context, userID uint, readAt time.Time) (int64, error)
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return n.SetID(1)
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*notification.Notification, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockNotificationRepository) ListUnreadByUser(ctx context.Context, userID uint) ([]*notification.Notification, error) {
	if m.ListUnreadByUserFunc != nil {
		return m.ListUnreadByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, n *notification.Notification) error {
	if m.MarkAsReadFunc != nil {
		return m.MarkAsReadFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context, userID uint, readAt time.Time) (int64, error) {
	if m.MarkAllAsReadFunc != nil {
		return m.MarkAllAsReadFunc(ctx, userID, readAt)
	}
	return 0, nil
}

type mockUserRepository struct {
	GetByIDFunc           func(ctx context.Context, id uint) (*user.User, error)
	GetByIDsFunc          func(ctx context.Context, ids []uint) (map[uint]*user.User, error)
	ListActiveByRolesFunc func(ctx context.Context, roles ...user.Role) ([]*user.User, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return map[uint]*user.User{}, nil
}

func (m *mockUserRepository) ListActiveByRoles(ctx context.Context, roles ...user.Role) ([]*user.User, error) {
	if m.ListActiveByRolesFunc != nil {
		return m.ListActiveByRolesFunc(ctx, roles...)
	}
	return nil, nil
}

func (m *mockUserRepository) Create(context.Context, *user.User) error { return nil }

type mockRenderer struct {
	NotificationFunc func(to email.Recipient, title, message string) (*email.Message, error)
}

func (m *mockRenderer) Notification(to email.Recipient, title, message string) (*email.Message, error) {
	if m.NotificationFunc != nil {
		return m.NotificationFunc(to, title, message)
	}
	return &email.Message{To: to.Email, Subject: "GearGuard - " + title, TextBody: message}, nil
}

type mockEnqueuer struct {
	mu          sync.Mutex
	EnqueueFunc func(ctx context.Context, msg *email.Message) error
	messages    []*email.Message
}

func (m *mockEnqueuer) Enqueue(ctx context.Context, msg *email.Message) error {
	m.mu.Lock()
	m.messages = append(m.messages, msg)
	m.mu.Unlock()
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(ctx, msg)
	}
	return nil
}
