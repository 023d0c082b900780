package usecases

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/gearguard/gearguard/internal/domain/maintenance"
	vo "github.com/gearguard/gearguard/internal/domain/maintenance/valueobjects"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

// RefreshOverdueUseCase re-applies the overdue rule to every pending request.
// It writes no audit entries and sends nothing.
type RefreshOverdueUseCase struct {
	repo   maintenance.Repository
	locker *RequestLocker
	tx     TransactionRunner
	clock  clockwork.Clock
	logger logger.Interface
}

func NewRefreshOverdueUseCase(
	repo maintenance.Repository,
	locker *RequestLocker,
	tx TransactionRunner,
	clock clockwork.Clock,
	logger logger.Interface,
) *RefreshOverdueUseCase {
	return &RefreshOverdueUseCase{
		repo:   repo,
		locker: locker,
		tx:     tx,
		clock:  clock,
		logger: logger,
	}
}

// Execute returns the number of requests whose flag changed. A request that
// fails to refresh is logged and skipped.
func (uc *RefreshOverdueUseCase) Execute(ctx context.Context) (int, error) {
	candidates, err := uc.repo.List(ctx, maintenance.Filter{Stages: vo.PendingStages()})
	if err != nil {
		return 0, fmt.Errorf("failed to list pending requests: %w", err)
	}

	changed := 0
	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return changed, err
		}
		if candidate.ScheduledDate() == nil && !candidate.IsOverdue() {
			continue
		}

		ok, err := uc.refresh(ctx, candidate.ID())
		if err != nil {
			uc.logger.Warnw("failed to refresh overdue flag", "request_id", candidate.ID(), "error", err)
			continue
		}
		if ok {
			changed++
		}
	}

	uc.logger.Infow("overdue flags refreshed", "checked", len(candidates), "changed", changed)
	return changed, nil
}

// refresh reloads the request under its lock so a concurrent command is never overwritten.
func (uc *RefreshOverdueUseCase) refresh(ctx context.Context, id uint) (bool, error) {
	unlock := uc.locker.Lock(id)
	defer unlock()

	changed := false
	err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		req, err := uc.repo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if req == nil || !req.RefreshOverdue(uc.clock.Now()) {
			return nil
		}
		if err := uc.repo.Update(txCtx, req); err != nil {
			return err
		}
		changed = true
		return nil
	})
	return changed, err
}
