package usecases

import (
	"context"
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

type CreateRequestCommand struct {
	Subject           string     `json:"subject" validate:"required,max=200"`
	Description       string     `json:"description" validate:"max=5000"`
	Type              string     `json:"type" validate:"omitempty,oneof=CORRECTIVE PREVENTIVE"`
	Priority          string     `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	EquipmentID       uint       `json:"equipmentId" validate:"required"`
	RequesterID       uint       `json:"requestedById" validate:"required"`
	AssignedTeamID    *uint      `json:"assignedTeamId"`
	AssignedToID      *uint      `json:"assignedToId"`
	ScheduledDate     *time.Time `json:"scheduledDate"`
	EstimatedDuration *float64   `json:"estimatedDuration" validate:"omitempty,gte=0"`
	Notes             string     `json:"notes"`
	ActorID           *uint      `json:"-"`
}

type CreateRequestUseCase struct {
	repo     maintenance.Repository
	refs     referenceChecker
	tx       TransactionRunner
	effects  *EffectRunner
	resolver *RequestResolver
	clock    clockwork.Clock
	logger   logger.Interface
}

func NewCreateRequestUseCase(
	repo maintenance.Repository,
	equipmentRepo equipment.Repository,
	userRepo user.Repository,
	teamRepo team.Repository,
	tx TransactionRunner,
	effects *EffectRunner,
	resolver *RequestResolver,
	clock clockwork.Clock,
	logger logger.Interface,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		repo:     repo,
		refs:     referenceChecker{equipmentRepo: equipmentRepo, userRepo: userRepo, teamRepo: teamRepo},
		tx:       tx,
		effects:  effects,
		resolver: resolver,
		clock:    clock,
		logger:   logger,
	}
}

// Execute stores a new request in stage NEW. No notification is sent on create,
// even when an assignee is given.
func (uc *CreateRequestUseCase) Execute(ctx context.Context, cmd CreateRequestCommand) (*dto.RequestDTO, error) {
	uc.logger.Infow("executing create request use case", "subject", cmd.Subject, "equipment_id", cmd.EquipmentID)

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid create request command", "error", err)
		return nil, err
	}

	var created *maintenance.Request
	err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.refs.check(txCtx, cmd.EquipmentID, cmd.RequesterID, cmd.AssignedTeamID, cmd.AssignedToID); err != nil {
			return err
		}

		req, err := maintenance.NewRequest(maintenance.NewRequestParams{
			Subject:           cmd.Subject,
			Description:       cmd.Description,
			Type:              vo.RequestType(cmd.Type),
			Priority:          vo.Priority(cmd.Priority),
			EquipmentID:       cmd.EquipmentID,
			RequesterID:       cmd.RequesterID,
			AssignedTeamID:    cmd.AssignedTeamID,
			AssignedToID:      cmd.AssignedToID,
			ScheduledDate:     cmd.ScheduledDate,
			EstimatedDuration: cmd.EstimatedDuration,
			Notes:             cmd.Notes,
		}, uc.clock.Now())
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.repo.Create(txCtx, req); err != nil {
			return err
		}
		created = req
		return nil
	})
	if err != nil {
		if errors.GetAppError(err) == nil {
			uc.logger.Errorw("failed to create request", "subject", cmd.Subject, "error", err)
		}
		return nil, err
	}

	uc.effects.RecordAudits(ctx, []maintenance.SideEffect{created.CreatedAudit()}, cmd.ActorID)

	uc.logger.Infow("request created",
		"request_id", created.ID(),
		"stage", created.Stage(),
		"is_overdue", created.IsOverdue())

	return uc.resolver.Resolve(ctx, created), nil
}
