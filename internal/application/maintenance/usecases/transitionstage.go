package usecases

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/gearguard/gearguard/internal/application/maintenance/dto"
	"github.com/gearguard/gearguard/internal/domain/maintenance"
	vo "github.com/gearguard/gearguard/internal/domain/maintenance/valueobjects"
	"github.com/gearguard/gearguard/internal/shared/errors"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

type TransitionStageCommand struct {
	ID      uint
	Stage   string
	ActorID *uint
}

type TransitionStageUseCase struct {
	repo     maintenance.Repository
	executor *CommandExecutor
	effects  *EffectRunner
	resolver *RequestResolver
	clock    clockwork.Clock
	logger   logger.Interface
}

func NewTransitionStageUseCase(
	repo maintenance.Repository,
	executor *CommandExecutor,
	effects *EffectRunner,
	resolver *RequestResolver,
	clock clockwork.Clock,
	logger logger.Interface,
) *TransitionStageUseCase {
	return &TransitionStageUseCase{
		repo:     repo,
		executor: executor,
		effects:  effects,
		resolver: resolver,
		clock:    clock,
		logger:   logger,
	}
}

// Execute moves a request to cmd.Stage. Scrapping retires the equipment in the
// same transaction; the equipment audit entry precedes the stage change entry.
func (uc *TransitionStageUseCase) Execute(ctx context.Context, cmd TransitionStageCommand) (*dto.RequestDTO, error) {
	target, err := vo.NewStage(cmd.Stage)
	if err != nil {
		return nil, errors.NewInvalidStateError(err.Error())
	}

	uc.logger.Infow("executing transition stage use case", "request_id", cmd.ID, "stage", target)

	var (
		moved *maintenance.Request
		from  vo.Stage
	)
	notifications, err := uc.executor.Run(ctx, cmd.ID, cmd.ActorID, func(txCtx context.Context) ([]maintenance.SideEffect, error) {
		req, err := uc.repo.GetByID(txCtx, cmd.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load request: %w", err)
		}
		if req == nil {
			return nil, errors.NewNotFoundError("request not found", fmt.Sprintf("id: %d", cmd.ID))
		}

		from = req.Stage()
		effects, err := req.TransitionTo(target, uc.clock.Now())
		if err != nil {
			return nil, errors.NewInvalidStateError(err.Error())
		}

		if err := uc.repo.Update(txCtx, req); err != nil {
			return nil, err
		}
		moved = req
		return effects, nil
	})
	if err != nil {
		if errors.GetAppError(err) == nil {
			uc.logger.Errorw("failed to transition request", "request_id", cmd.ID, "stage", target, "error", err)
		}
		return nil, err
	}

	uc.effects.Notify(ctx, notifications, moved)

	uc.logger.Infow("request stage changed",
		"request_id", moved.ID(),
		"from", from,
		"to", moved.Stage())

	return uc.resolver.Resolve(ctx, moved), nil
}
