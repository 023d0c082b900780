package notification

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearguard/gearguard/internal/application/notification/usecases"
	"github.com/gearguard/gearguard/internal/domain/notification"
	"github.com/gearguard/gearguard/internal/domain/user"
	"github.com/gearguard/gearguard/internal/infrastructure/email"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

type memoryNotifications struct {
	items []*notification.Notification
}

func (m *memoryNotifications) Create(_ context.Context, n *notification.Notification) error {
	m.items = append(m.items, n)
	return n.SetID(uint(len(m.items)))
}

func (m *memoryNotifications) GetByID(context.Context, uint) (*notification.Notification, error) {
	return nil, nil
}

func (m *memoryNotifications) ListByUser(context.Context, uint, int) ([]*notification.Notification, error) {
	return m.items, nil
}

func (m *memoryNotifications) ListUnreadByUser(context.Context, uint) ([]*notification.Notification, error) {
	return m.items, nil
}

func (m *memoryNotifications) CountUnread(context.Context, uint) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *memoryNotifications) MarkAsRead(context.Context, *notification.Notification) error {
	return nil
}

func (m *memoryNotifications) MarkAllAsRead(context.Context, uint, time.Time) (int64, error) {
	return 0, nil
}

type singleUser struct{ u *user.User }

func (s singleUser) GetByID(_ context.Context, id uint) (*user.User, error) {
	if s.u.ID() == id {
		return s.u, nil
	}
	return nil, nil
}

func (s singleUser) GetByIDs(context.Context, []uint) (map[uint]*user.User, error) { return nil, nil }

func (s singleUser) ListActiveByRoles(context.Context, ...user.Role) ([]*user.User, error) {
	return nil, nil
}

func (s singleUser) Create(context.Context, *user.User) error { return nil }

type capturingQueue struct{ messages []*email.Message }

func (q *capturingQueue) Enqueue(_ context.Context, msg *email.Message) error {
	q.messages = append(q.messages, msg)
	return nil
}

type fakeRenderer struct{ assignments []email.AssignmentView }

func (f *fakeRenderer) Notification(to email.Recipient, title, message string) (*email.Message, error) {
	return &email.Message{To: to.Email, Subject: "GearGuard - " + title, TextBody: message}, nil
}

func (f *fakeRenderer) Assignment(to email.Recipient, v email.AssignmentView) (*email.Message, error) {
	f.assignments = append(f.assignments, v)
	return &email.Message{To: to.Email, Subject: "🔧 New Assignment: " + v.Subject}, nil
}

func newTestService() (*NotificationService, *memoryNotifications, *capturingQueue, *fakeRenderer) {
	now := time.Date(2026, 4, 15, 9, 30, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	log := logger.NewNopLogger()
	repo := &memoryNotifications{}
	users := singleUser{u: user.ReconstructUser(7, "Tina Tech", "tina@example.com", user.RoleTechnician, true, now)}
	queue := &capturingQueue{}
	renderer := &fakeRenderer{}

	svc := NewNotificationService(
		usecases.NewCreateNotificationUseCase(repo, users, renderer, queue, clock, log),
		usecases.NewListNotificationsUseCase(repo, clock, log),
		usecases.NewMarkNotificationAsReadUseCase(repo, clock, log),
		usecases.NewMarkAllAsReadUseCase(repo, clock, log),
		renderer,
		log,
	)
	return svc, repo, queue, renderer
}

func TestNotificationService_Helpers(t *testing.T) {
	ref := RequestRef{ID: 4, Subject: "Pump leak"}

	tests := []struct {
		name        string
		notify      func(s *NotificationService) error
		wantTitle   string
		wantMessage string
		wantType    string
		wantEmail   bool
	}{
		{
			name:        "assigned",
			notify:      func(s *NotificationService) error { return s.NotifyRequestAssigned(context.Background(), 7, ref, email.AssignmentView{Subject: ref.Subject}) },
			wantTitle:   "New Request Assigned",
			wantMessage: "You have been assigned to: Pump leak",
			wantType:    "REQUEST_ASSIGNED",
			wantEmail:   true,
		},
		{
			name:        "updated",
			notify:      func(s *NotificationService) error { return s.NotifyRequestUpdated(context.Background(), 7, ref, "IN_PROGRESS") },
			wantTitle:   "Request Updated",
			wantMessage: "Pump leak has been moved to IN_PROGRESS",
			wantType:    "REQUEST_UPDATED",
		},
		{
			name:        "completed",
			notify:      func(s *NotificationService) error { return s.NotifyRequestCompleted(context.Background(), 7, ref) },
			wantTitle:   "Request Completed",
			wantMessage: "Pump leak has been marked as completed!",
			wantType:    "REQUEST_COMPLETED",
			wantEmail:   true,
		},
		{
			name:        "overdue",
			notify:      func(s *NotificationService) error { return s.NotifyOverdue(context.Background(), 7, ref) },
			wantTitle:   "⚠️ Overdue Request",
			wantMessage: "Pump leak is overdue and needs immediate attention!",
			wantType:    "REQUEST_OVERDUE",
			wantEmail:   true,
		},
		{
			name:        "team added",
			notify:      func(s *NotificationService) error { return s.NotifyTeamAdded(context.Background(), 7, 2, "Hydraulics") },
			wantTitle:   "Added to Team",
			wantMessage: "You have been added to the Hydraulics team",
			wantType:    "TEAM_ADDED",
			wantEmail:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, queue, _ := newTestService()

			require.NoError(t, tt.notify(svc))

			require.Len(t, repo.items, 1)
			n := repo.items[0]
			assert.Equal(t, tt.wantTitle, n.Title())
			assert.Equal(t, tt.wantMessage, n.Message())
			assert.Equal(t, tt.wantType, n.Type().String())
			assert.NotNil(t, n.RelatedEntityID())
			assert.Equal(t, tt.wantEmail, len(queue.messages) == 1)
		})
	}
}

func TestNotificationService_AssignmentEmailUsesRecipientName(t *testing.T) {
	svc, _, queue, renderer := newTestService()

	err := svc.NotifyRequestAssigned(context.Background(), 7, RequestRef{ID: 4, Subject: "Pump leak"}, email.AssignmentView{Subject: "Pump leak"})

	require.NoError(t, err)
	require.Len(t, renderer.assignments, 1)
	assert.Equal(t, "Tina Tech", renderer.assignments[0].TechnicianName)
	require.Len(t, queue.messages, 1)
	assert.Equal(t, "🔧 New Assignment: Pump leak", queue.messages[0].Subject)
}
