package usecases

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/gearguard/gearguard/internal/application/notification/dto"
	"github.com/gearguard/gearguard/internal/domain/notification"
	"github.com/gearguard/gearguard/internal/shared/errors"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

// RecentNotificationsLimit caps the list returned for a user's inbox.
const RecentNotificationsLimit = 20

type ListNotificationsUseCase struct {
	repo   notification.Repository
	clock  clockwork.Clock
	logger logger.Interface
}

func NewListNotificationsUseCase(
	repo notification.Repository,
	clock clockwork.Clock,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// Execute returns the newest notifications of userID.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, userID uint) ([]*dto.NotificationDTO, error) {
	items, err := uc.repo.ListByUser(ctx, userID, RecentNotificationsLimit)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}
	return dto.ToNotificationDTOs(items, uc.clock.Now()), nil
}

// ExecuteUnread returns every unread notification of userID, newest first.
func (uc *ListNotificationsUseCase) ExecuteUnread(ctx context.Context, userID uint) ([]*dto.NotificationDTO, error) {
	items, err := uc.repo.ListUnreadByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list unread notifications", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to list unread notifications")
	}
	return dto.ToNotificationDTOs(items, uc.clock.Now()), nil
}

func (uc *ListNotificationsUseCase) ExecuteUnreadCount(ctx context.Context, userID uint) (*dto.UnreadCountResponse, error) {
	count, err := uc.repo.CountUnread(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to count unread notifications")
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}
