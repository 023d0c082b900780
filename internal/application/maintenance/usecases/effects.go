package usecases

import (
	"context"
	"fmt"

	auditapp "github.com/gearguard/gearguard/internal/application/audit"
	notificationapp "github.com/gearguard/gearguard/internal/application/notification"
	"github.com/gearguard/gearguard/internal/domain/audit"
	"github.com/gearguard/gearguard/internal/domain/equipment"
	"github.com/gearguard/gearguard/internal/domain/maintenance"
	vo "github.com/gearguard/gearguard/internal/domain/maintenance/valueobjects"
	"github.com/gearguard/gearguard/internal/infrastructure/email"
	"github.com/gearguard/gearguard/internal/shared/constants"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

// EffectRunner carries out the side effects a request mutation returns, in
// three phases: equipment writes inside the transaction, audit entries after
// commit, notifications after the request lock is released.
type EffectRunner struct {
	equipmentRepo equipment.Repository
	audit         AuditLogger
	notifier      Notifier
	resolver      *RequestResolver
	logger        logger.Interface
}

func NewEffectRunner(
	equipmentRepo equipment.Repository,
	audit AuditLogger,
	notifier Notifier,
	resolver *RequestResolver,
	logger logger.Interface,
) *EffectRunner {
	return &EffectRunner{
		equipmentRepo: equipmentRepo,
		audit:         audit,
		notifier:      notifier,
		resolver:      resolver,
		logger:        logger,
	}
}

// ApplyInTx executes the equipment effects with the transaction carried by ctx.
// Each one is replaced in the returned list by the audit entry it produced.
func (r *EffectRunner) ApplyInTx(ctx context.Context, effects []maintenance.SideEffect) ([]maintenance.SideEffect, error) {
	out := make([]maintenance.SideEffect, 0, len(effects))
	for _, effect := range effects {
		retire, ok := effect.(maintenance.RetireEquipment)
		if !ok {
			out = append(out, effect)
			continue
		}

		entry, err := r.retireEquipment(ctx, retire)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			out = append(out, *entry)
		}
	}
	return out, nil
}

func (r *EffectRunner) retireEquipment(ctx context.Context, e maintenance.RetireEquipment) (*maintenance.RecordAudit, error) {
	eq, err := r.equipmentRepo.GetByIDForUpdate(ctx, e.EquipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load equipment %d: %w", e.EquipmentID, err)
	}
	if eq == nil {
		r.logger.Warnw("scrapped request references missing equipment",
			"request_id", e.RequestID,
			"equipment_id", e.EquipmentID)
		return nil, nil
	}

	previous := eq.Retire(e.RequestID, e.Subject, e.At)
	if err := r.equipmentRepo.Update(ctx, eq); err != nil {
		return nil, fmt.Errorf("failed to retire equipment %d: %w", eq.ID(), err)
	}

	r.logger.Infow("equipment retired by scrapped request",
		"request_id", e.RequestID,
		"equipment_id", eq.ID(),
		"previous_status", previous)

	return &maintenance.RecordAudit{
		Action:     audit.ActionUpdate,
		EntityType: constants.EntityEquipment,
		EntityID:   eq.ID(),
		Details:    fmt.Sprintf("Equipment marked as INACTIVE due to scrap - Request #%d", e.RequestID),
		OldValue:   audit.Snapshot{"status": previous.String()},
		NewValue:   audit.Snapshot{"status": eq.Status().String(), "notes": eq.Notes()},
	}, nil
}

// RecordAudits writes every audit effect in order and returns the remaining effects.
func (r *EffectRunner) RecordAudits(ctx context.Context, effects []maintenance.SideEffect, actorID *uint) []maintenance.SideEffect {
	rest := make([]maintenance.SideEffect, 0, len(effects))
	for _, effect := range effects {
		entry, ok := effect.(maintenance.RecordAudit)
		if !ok {
			rest = append(rest, effect)
			continue
		}
		r.audit.Log(ctx, auditapp.Entry{
			Action:     entry.Action,
			EntityType: entry.EntityType,
			EntityID:   entry.EntityID,
			Details:    entry.Details,
			OldValue:   entry.OldValue,
			NewValue:   entry.NewValue,
			ActorID:    actorID,
		})
	}
	return rest
}

// Notify delivers the notification effects for req as committed. Failures are
// logged and never returned.
func (r *EffectRunner) Notify(ctx context.Context, effects []maintenance.SideEffect, req *maintenance.Request) {
	for _, effect := range effects {
		switch e := effect.(type) {
		case maintenance.NotifyAssignee:
			r.notifyAssignee(ctx, e, req)
		case maintenance.NotifyStageChanged:
			r.notifyStageChanged(ctx, e)
		default:
			r.logger.Warnw("unhandled side effect", "effect", fmt.Sprintf("%T", effect))
		}
	}
}

func (r *EffectRunner) notifyAssignee(ctx context.Context, e maintenance.NotifyAssignee, req *maintenance.Request) {
	view := email.AssignmentView{Subject: e.Subject}
	if req != nil {
		d := r.resolver.Resolve(ctx, req)
		view = email.AssignmentView{
			TechnicianName:    d.AssignedToName,
			Subject:           d.Subject,
			Priority:          d.Priority,
			Type:              d.Type,
			Stage:             d.Stage,
			EquipmentName:     d.EquipmentName,
			EquipmentLocation: d.EquipmentLocation,
			Description:       d.Description,
		}
		if d.ScheduledDate != nil {
			view.ScheduledDate = *d.ScheduledDate
		}
	}

	ref := notificationapp.RequestRef{ID: e.RequestID, Subject: e.Subject}
	if err := r.notifier.NotifyRequestAssigned(ctx, e.AssigneeID, ref, view); err != nil {
		r.logger.Errorw("failed to notify assignee",
			"request_id", e.RequestID,
			"assignee_id", e.AssigneeID,
			"error", err)
	}
}

// A request entering REPAIRED tells its requester; any other move tells the assignee.
func (r *EffectRunner) notifyStageChanged(ctx context.Context, e maintenance.NotifyStageChanged) {
	ref := notificationapp.RequestRef{ID: e.RequestID, Subject: e.Subject}

	var (
		userID uint
		err    error
	)
	switch {
	case e.To == vo.StageRepaired:
		userID = e.RequesterID
		err = r.notifier.NotifyRequestCompleted(ctx, userID, ref)
	case e.AssigneeID != nil:
		userID = *e.AssigneeID
		err = r.notifier.NotifyRequestUpdated(ctx, userID, ref, e.To.String())
	default:
		return
	}

	if err != nil {
		r.logger.Errorw("failed to notify stage change",
			"request_id", e.RequestID,
			"user_id", userID,
			"stage", e.To,
			"error", err)
	}
}
