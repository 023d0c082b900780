package usecases

import (
	"context"
	"fmt"

	"github.com/gearguard/gearguard/internal/domain/maintenance"
	"github.com/gearguard/gearguard/internal/shared/errors"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

type DeleteRequestCommand struct {
	ID      uint
	ActorID *uint
}

type DeleteRequestUseCase struct {
	repo     maintenance.Repository
	executor *CommandExecutor
	logger   logger.Interface
}

func NewDeleteRequestUseCase(
	repo maintenance.Repository,
	executor *CommandExecutor,
	logger logger.Interface,
) *DeleteRequestUseCase {
	return &DeleteRequestUseCase{
		repo:     repo,
		executor: executor,
		logger:   logger,
	}
}

// Execute removes the request. A missing request is reported as not found and
// leaves no audit entry behind.
func (uc *DeleteRequestUseCase) Execute(ctx context.Context, cmd DeleteRequestCommand) error {
	uc.logger.Infow("executing delete request use case", "request_id", cmd.ID)

	_, err := uc.executor.Run(ctx, cmd.ID, cmd.ActorID, func(txCtx context.Context) ([]maintenance.SideEffect, error) {
		req, err := uc.repo.GetByID(txCtx, cmd.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load request: %w", err)
		}
		if req == nil {
			return nil, errors.NewNotFoundError("request not found", fmt.Sprintf("id: %d", cmd.ID))
		}

		deleted := req.DeletedAudit()
		if err := uc.repo.Delete(txCtx, cmd.ID); err != nil {
			return nil, err
		}
		return []maintenance.SideEffect{deleted}, nil
	})
	if err != nil {
		if errors.GetAppError(err) == nil {
			uc.logger.Errorw("failed to delete request", "request_id", cmd.ID, "error", err)
		}
		return err
	}

	uc.logger.Infow("request deleted", "request_id", cmd.ID)
	return nil
}
