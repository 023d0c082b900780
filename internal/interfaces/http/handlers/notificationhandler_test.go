package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notificationdto "github.com/gearguard/gearguard/internal/application/notification/dto"
	"github.com/gearguard/gearguard/internal/domain/user"
	"github.com/gearguard/gearguard/internal/interfaces/http/handlers/testutil"
	"github.com/gearguard/gearguard/internal/shared/errors"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

func TestNotificationHandler_ListNotifications(t *testing.T) {
	var gotUser uint
	svc := &mockNotificationService{
		GetUserNotificationsFunc: func(ctx context.Context, userID uint) ([]*notificationdto.NotificationDTO, error) {
			gotUser = userID
			return []*notificationdto.NotificationDTO{
				{ID: 1, UserID: userID, Title: "New Request Assigned", TimeAgo: "5m ago"},
			}, nil
		},
	}
	h := NewNotificationHandler(svc, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/notifications", nil)
	testutil.SetAuthContext(c, 2, user.RoleTechnician)

	h.ListNotifications(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(2), gotUser)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var items []notificationdto.NotificationDTO
	require.NoError(t, json.Unmarshal(resp.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "5m ago", items[0].TimeAgo)
}

func TestNotificationHandler_RequiresAuthentication(t *testing.T) {
	h := NewNotificationHandler(&mockNotificationService{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/notifications/unread", nil)

	h.ListUnread(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNotificationHandler_GetUnreadCount(t *testing.T) {
	svc := &mockNotificationService{
		GetUnreadCountFunc: func(ctx context.Context, userID uint) (*notificationdto.UnreadCountResponse, error) {
			return &notificationdto.UnreadCountResponse{Count: 4}, nil
		},
	}
	h := NewNotificationHandler(svc, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/notifications/unread/count", nil)
	testutil.SetAuthContext(c, 2, user.RoleTechnician)

	h.GetUnreadCount(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.JSONEq(t, `{"count":4}`, string(resp.Data))
}

func TestNotificationHandler_MarkAsRead(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		svcErr   error
		wantCode int
	}{
		{name: "own notification", id: "9", wantCode: http.StatusOK},
		{name: "someone else's", id: "9", svcErr: errors.NewForbiddenError("notification belongs to another user"), wantCode: http.StatusForbidden},
		{name: "missing", id: "9", svcErr: errors.NewNotFoundError("notification not found"), wantCode: http.StatusNotFound},
		{name: "bad id", id: "nine", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID, gotUser uint
			svc := &mockNotificationService{
				MarkAsReadFunc: func(ctx context.Context, id uint, userID uint) error {
					gotID, gotUser = id, userID
					return tt.svcErr
				},
			}
			h := NewNotificationHandler(svc, logger.NewNopLogger())

			c, w := testutil.NewTestContext(http.MethodPatch, "/api/notifications/"+tt.id+"/read", nil)
			testutil.SetURLParam(c, "id", tt.id)
			testutil.SetAuthContext(c, 2, user.RoleTechnician)

			h.MarkAsRead(c)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.id == "9" {
				assert.Equal(t, uint(9), gotID)
				assert.Equal(t, uint(2), gotUser)
			}
		})
	}
}

func TestNotificationHandler_MarkAllAsRead(t *testing.T) {
	svc := &mockNotificationService{
		MarkAllAsReadFunc: func(ctx context.Context, userID uint) (*notificationdto.MarkAllAsReadResponse, error) {
			return &notificationdto.MarkAllAsReadResponse{Updated: 0}, nil
		},
	}
	h := NewNotificationHandler(svc, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/notifications/read-all", nil)
	testutil.SetAuthContext(c, 2, user.RoleTechnician)

	h.MarkAllAsRead(c)

	assert.Equal(t, http.StatusOK, w.Code, "nothing to mark is still a success")
}
