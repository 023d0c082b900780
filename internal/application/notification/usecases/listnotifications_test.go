package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearguard/gearguard/internal/domain/notification"
	vo "github.com/gearguard/gearguard/internal/domain/notification/valueobjects"
	"github.com/gearguard/gearguard/internal/shared/errors"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

func TestListNotificationsUseCase_Execute(t *testing.T) {
	created := testNow.Add(-5 * time.Minute)
	n, err := notification.ReconstructNotification(1, 7, vo.NotificationTypeInfo, "Hello", "", "", nil, false, nil, created)
	require.NoError(t, err)

	var gotLimit int
	repo := &mockNotificationRepository{
		ListByUserFunc: func(_ context.Context, userID uint, limit int) ([]*notification.Notification, error) {
			assert.Equal(t, uint(7), userID)
			gotLimit = limit
			return []*notification.Notification{n}, nil
		},
	}
	uc := NewListNotificationsUseCase(repo, clockwork.NewFakeClockAt(testNow), logger.NewNopLogger())

	items, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, RecentNotificationsLimit, gotLimit)
	assert.Equal(t, "5m ago", items[0].TimeAgo)
}

func TestListNotificationsUseCase_ExecuteUnreadEmpty(t *testing.T) {
	uc := NewListNotificationsUseCase(&mockNotificationRepository{}, clockwork.NewFakeClockAt(testNow), logger.NewNopLogger())

	items, err := uc.ExecuteUnread(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListNotificationsUseCase_ExecuteUnreadCount(t *testing.T) {
	tests := []struct {
		name      string
		count     int64
		repoErr   error
		wantCount int64
		wantErr   bool
	}{
		{name: "counts unread", count: 3, wantCount: 3},
		{name: "zero", count: 0, wantCount: 0},
		{name: "store failure", repoErr: fmt.Errorf("connection lost"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockNotificationRepository{
				CountUnreadFunc: func(context.Context, uint) (int64, error) {
					return tt.count, tt.repoErr
				},
			}
			uc := NewListNotificationsUseCase(repo, clockwork.NewFakeClockAt(testNow), logger.NewNopLogger())

			got, err := uc.ExecuteUnreadCount(context.Background(), 7)
			if tt.wantErr {
				require.Error(t, err)
				appErr := errors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, got.Count)
		})
	}
}
