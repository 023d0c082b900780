// Package audit writes and reads the append-only audit trail.
package audit

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/gearguard/gearguard/internal/domain/audit"
	"github.com/gearguard/gearguard/internal/shared/errors"
	"github.com/gearguard/gearguard/internal/shared/logger"
	"github.com/gearguard/gearguard/internal/shared/mapper"
)

// RecentLimit is the size of the recent activity feed.
const RecentLimit = 50

type Entry struct {
	Action     audit.Action
	EntityType string
	EntityID   uint
	Details    string
	OldValue   audit.Snapshot
	NewValue   audit.Snapshot
	ActorID    *uint
}

type AuditLogDTO struct {
	ID         uint           `json:"id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   uint           `json:"entityId"`
	Details    string         `json:"details"`
	OldValue   audit.Snapshot `json:"oldValue,omitempty"`
	NewValue   audit.Snapshot `json:"newValue,omitempty"`
	ActorID    *uint          `json:"userId,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type AuditService struct {
	repo   audit.Repository
	clock  clockwork.Clock
	logger logger.Interface
}

func NewAuditService(repo audit.Repository, clock clockwork.Clock, logger logger.Interface) *AuditService {
	return &AuditService{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// Log appends one entry. Failures go to the process log and never reach the caller.
func (s *AuditService) Log(ctx context.Context, e Entry) {
	entry, err := audit.NewAuditLog(e.Action, e.EntityType, e.EntityID, e.Details, e.OldValue, e.NewValue, e.ActorID, s.clock.Now())
	if err != nil {
		s.logger.Errorw("invalid audit entry",
			"action", e.Action,
			"entity_type", e.EntityType,
			"entity_id", e.EntityID,
			"error", err)
		return
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Errorw("failed to write audit log",
			"action", e.Action,
			"entity_type", e.EntityType,
			"entity_id", e.EntityID,
			"details", e.Details,
			"error", err)
	}
}

func (s *AuditService) GetRecentAuditLogs(ctx context.Context) ([]*AuditLogDTO, error) {
	logs, err := s.repo.ListRecent(ctx, RecentLimit)
	if err != nil {
		s.logger.Errorw("failed to list recent audit logs", "error", err)
		return nil, errors.NewInternalError("failed to list audit logs")
	}
	return toDTOs(logs), nil
}

func (s *AuditService) GetAuditLogsForEntity(ctx context.Context, entityType string, entityID uint) ([]*AuditLogDTO, error) {
	if entityType == "" {
		return nil, errors.NewValidationError("entity type is required")
	}
	logs, err := s.repo.ListByEntity(ctx, entityType, entityID)
	if err != nil {
		s.logger.Errorw("failed to list audit logs for entity", "entity_type", entityType, "entity_id", entityID, "error", err)
		return nil, errors.NewInternalError("failed to list audit logs")
	}
	return toDTOs(logs), nil
}

func (s *AuditService) GetAuditLogsForUser(ctx context.Context, userID uint) ([]*AuditLogDTO, error) {
	logs, err := s.repo.ListByActor(ctx, userID)
	if err != nil {
		s.logger.Errorw("failed to list audit logs for user", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to list audit logs")
	}
	return toDTOs(logs), nil
}

// GetAllAuditLogs returns one newest-first page and the total number of entries.
func (s *AuditService) GetAllAuditLogs(ctx context.Context, page, pageSize int) ([]*AuditLogDTO, int64, error) {
	logs, total, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		s.logger.Errorw("failed to list audit logs", "page", page, "page_size", pageSize, "error", err)
		return nil, 0, errors.NewInternalError("failed to list audit logs")
	}
	return toDTOs(logs), total, nil
}

func (s *AuditService) GetAuditLogsByDateRange(ctx context.Context, from, to time.Time) ([]*AuditLogDTO, error) {
	if to.Before(from) {
		return nil, errors.NewValidationError("end of range is before its start")
	}
	logs, err := s.repo.ListByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Errorw("failed to list audit logs by date range", "from", from, "to", to, "error", err)
		return nil, errors.NewInternalError("failed to list audit logs")
	}
	return toDTOs(logs), nil
}

func toDTOs(logs []*audit.AuditLog) []*AuditLogDTO {
	if len(logs) == 0 {
		return []*AuditLogDTO{}
	}
	return mapper.MapSlice(logs, func(l *audit.AuditLog) *AuditLogDTO {
		return &AuditLogDTO{
			ID:         l.ID(),
			Action:     l.Action().String(),
			EntityType: l.EntityType(),
			EntityID:   l.EntityID(),
			Details:    l.Details(),
			OldValue:   l.OldValue(),
			NewValue:   l.NewValue(),
			ActorID:    l.ActorID(),
			CreatedAt:  l.CreatedAt(),
		}
	})
}
