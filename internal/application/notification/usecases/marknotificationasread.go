package usecases

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/gearguard/gearguard/internal/domain/notification"
	"github.com/gearguard/gearguard/internal/shared/errors"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

type MarkNotificationAsReadUseCase struct {
	repo   notification.Repository
	clock  clockwork.Clock
	logger logger.Interface
}

func NewMarkNotificationAsReadUseCase(
	repo notification.Repository,
	clock clockwork.Clock,
	logger logger.Interface,
) *MarkNotificationAsReadUseCase {
	return &MarkNotificationAsReadUseCase{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// Execute marks notification id as read. userID 0 skips the ownership check.
// Marking an already-read notification succeeds without writing.
func (uc *MarkNotificationAsReadUseCase) Execute(ctx context.Context, id uint, userID uint) error {
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to find notification", "id", id, "error", err)
		return fmt.Errorf("failed to find notification: %w", err)
	}
	if n == nil {
		return errors.NewNotFoundError("notification not found", fmt.Sprintf("id: %d", id))
	}

	if userID != 0 && n.UserID() != userID {
		uc.logger.Warnw("unauthorized access to notification", "id", id, "user_id", userID, "owner_id", n.UserID())
		return errors.NewForbiddenError("you don't have permission to access this notification")
	}

	if !n.MarkAsRead(uc.clock.Now()) {
		return nil
	}

	if err := uc.repo.MarkAsRead(ctx, n); err != nil {
		uc.logger.Errorw("failed to persist notification update", "id", id, "error", err)
		return fmt.Errorf("failed to save notification: %w", err)
	}

	uc.logger.Debugw("notification marked as read", "id", id)
	return nil
}
