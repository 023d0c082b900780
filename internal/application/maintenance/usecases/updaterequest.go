package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/gearguard/gearguard/internal/application/maintenance/dto"
	"github.com/gearguard/gearguard/internal/domain/equipment"
	"github.com/gearguard/gearguard/internal/domain/maintenance"
	vo "github.com/gearguard/gearguard/internal/domain/maintenance/valueobjects"
	"github.com/gearguard/gearguard/internal/domain/team"
	"github.com/gearguard/gearguard/internal/domain/user"
	"github.com/gearguard/gearguard/internal/shared/errors"
	"github.com/gearguard/gearguard/internal/shared/logger"
	"github.com/gearguard/gearguard/internal/shared/utils"
)

// UpdateRequestCommand replaces the editable fields of a request. A nil team or
// assignee clears it; EquipmentID 0 keeps the current equipment.
type UpdateRequestCommand struct {
	ID                uint       `json:"-" validate:"required"`
	Subject           string     `json:"subject" validate:"required,max=200"`
	Description       string     `json:"description" validate:"max=5000"`
	Type              string     `json:"type" validate:"omitempty,oneof=CORRECTIVE PREVENTIVE"`
	Priority          string     `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	EquipmentID       uint       `json:"equipmentId"`
	AssignedTeamID    *uint      `json:"assignedTeamId"`
	AssignedToID      *uint      `json:"assignedToId"`
	ScheduledDate     *time.Time `json:"scheduledDate"`
	EstimatedDuration *float64   `json:"estimatedDuration" validate:"omitempty,gte=0"`
	Notes             string     `json:"notes"`
	ActorID           *uint      `json:"-"`
}

type UpdateRequestUseCase struct {
	repo     maintenance.Repository
	refs     referenceChecker
	executor *CommandExecutor
	effects  *EffectRunner
	resolver *RequestResolver
	clock    clockwork.Clock
	logger   logger.Interface
}

func NewUpdateRequestUseCase(
	repo maintenance.Repository,
	equipmentRepo equipment.Repository,
	userRepo user.Repository,
	teamRepo team.Repository,
	executor *CommandExecutor,
	effects *EffectRunner,
	resolver *RequestResolver,
	clock clockwork.Clock,
	logger logger.Interface,
) *UpdateRequestUseCase {
	return &UpdateRequestUseCase{
		repo:     repo,
		refs:     referenceChecker{equipmentRepo: equipmentRepo, userRepo: userRepo, teamRepo: teamRepo},
		executor: executor,
		effects:  effects,
		resolver: resolver,
		clock:    clock,
		logger:   logger,
	}
}

func (uc *UpdateRequestUseCase) Execute(ctx context.Context, cmd UpdateRequestCommand) (*dto.RequestDTO, error) {
	uc.logger.Infow("executing update request use case", "request_id", cmd.ID)

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid update request command", "request_id", cmd.ID, "error", err)
		return nil, err
	}

	var updated *maintenance.Request
	notifications, err := uc.executor.Run(ctx, cmd.ID, cmd.ActorID, func(txCtx context.Context) ([]maintenance.SideEffect, error) {
		req, err := uc.repo.GetByID(txCtx, cmd.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load request: %w", err)
		}
		if req == nil {
			return nil, errors.NewNotFoundError("request not found", fmt.Sprintf("id: %d", cmd.ID))
		}

		if err := uc.refs.check(txCtx, cmd.EquipmentID, 0, cmd.AssignedTeamID, cmd.AssignedToID); err != nil {
			return nil, err
		}

		effects, err := req.Apply(maintenance.Changes{
			Subject:           cmd.Subject,
			Description:       cmd.Description,
			Type:              vo.RequestType(cmd.Type),
			Priority:          vo.Priority(cmd.Priority),
			EquipmentID:       cmd.EquipmentID,
			AssignedTeamID:    cmd.AssignedTeamID,
			AssignedToID:      cmd.AssignedToID,
			ScheduledDate:     cmd.ScheduledDate,
			EstimatedDuration: cmd.EstimatedDuration,
			Notes:             cmd.Notes,
		}, uc.clock.Now())
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

		if err := uc.repo.Update(txCtx, req); err != nil {
			return nil, err
		}
		updated = req
		return effects, nil
	})
	if err != nil {
		if errors.GetAppError(err) == nil {
			uc.logger.Errorw("failed to update request", "request_id", cmd.ID, "error", err)
		}
		return nil, err
	}

	uc.effects.Notify(ctx, notifications, updated)

	uc.logger.Infow("request updated", "request_id", updated.ID(), "version", updated.Version())

	return uc.resolver.Resolve(ctx, updated), nil
}
