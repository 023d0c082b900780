package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/gearguard/gearguard/internal/domain/notification/valueobjects"
)

var created = time.Date(2026, 4, 15, 8, 0, 0, 0, time.UTC)

func TestNewNotification(t *testing.T) {
	related := uint(12)
	n, err := NewNotification(3, vo.NotificationTypeRequestAssigned, "New Request Assigned",
		"You have been assigned to: Pump leak", "MaintenanceRequest", &related, created)
	require.NoError(t, err)

	assert.False(t, n.IsRead())
	assert.Nil(t, n.ReadAt())
	assert.Equal(t, &related, n.RelatedEntityID())
	assert.True(t, n.Type().IsRequestEvent())
}

func TestNewNotification_DefaultsToInfo(t *testing.T) {
	n, err := NewNotification(3, "", "Heads up", "", "", nil, created)
	require.NoError(t, err)
	assert.Equal(t, vo.NotificationTypeInfo, n.Type())
}

func TestNewNotification_Validation(t *testing.T) {
	tests := []struct {
		name   string
		userID uint
		typ    vo.NotificationType
		title  string
	}{
		{"missing user", 0, vo.NotificationTypeInfo, "t"},
		{"bad type", 1, vo.NotificationType("PING"), "t"},
		{"missing title", 1, vo.NotificationTypeInfo, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNotification(tt.userID, tt.typ, tt.title, "m", "", nil, created)
			assert.Error(t, err)
		})
	}
}

func TestMarkAsRead_Idempotent(t *testing.T) {
	n, err := NewNotification(3, vo.NotificationTypeInfo, "t", "m", "", nil, created)
	require.NoError(t, err)

	first := created.Add(time.Minute)
	assert.True(t, n.MarkAsRead(first))
	assert.False(t, n.MarkAsRead(first.Add(time.Hour)))

	assert.True(t, n.IsRead())
	assert.Equal(t, first, *n.ReadAt())
}

func TestTimeAgo(t *testing.T) {
	tests := []struct {
		age  time.Duration
		want string
	}{
		{10 * time.Second, "Just now"},
		{5 * time.Minute, "5m ago"},
		{3*time.Hour + 20*time.Minute, "3h ago"},
		{50 * time.Hour, "2d ago"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeAgo(created, created.Add(tt.age)))
		})
	}
}
