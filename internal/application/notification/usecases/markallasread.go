package usecases

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/gearguard/gearguard/internal/domain/notification"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

type MarkAllAsReadUseCase struct {
	repo   notification.Repository
	clock  clockwork.Clock
	logger logger.Interface
}

func NewMarkAllAsReadUseCase(
	repo notification.Repository,
	clock clockwork.Clock,
	logger logger.Interface,
) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// Execute returns how many notifications changed; zero is a success.
func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, userID uint) (int64, error) {
	updated, err := uc.repo.MarkAllAsRead(ctx, userID, uc.clock.Now())
	if err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "user_id", userID, "error", err)
		return 0, fmt.Errorf("failed to mark all as read: %w", err)
	}

	if updated > 0 {
		uc.logger.Infow("all notifications marked as read", "user_id", userID, "count", updated)
	}
	return updated, nil
}
