package usecases

import (
	"context"

	auditapp "github.com/gearguard/gearguard/internal/application/audit"
	"github.com/gearguard/gearguard/internal/application/maintenance/dto"
	notificationapp "github.com/gearguard/gearguard/internal/application/notification"
	"github.com/gearguard/gearguard/internal/infrastructure/email"
)

// TransactionRunner commits when fn returns nil and rolls back otherwise.
// Repositories called with the ctx passed to fn join the transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type AuditLogger interface {
	Log(ctx context.Context, e auditapp.Entry)
}

type Notifier interface {
	NotifyRequestAssigned(ctx context.Context, userID uint, req notificationapp.RequestRef, view email.AssignmentView) error
	NotifyRequestUpdated(ctx context.Context, userID uint, req notificationapp.RequestRef, stage string) error
	NotifyRequestCompleted(ctx context.Context, userID uint, req notificationapp.RequestRef) error
}

type CreateRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateRequestCommand) (*dto.RequestDTO, error)
}

type UpdateRequestExecutor interface {
	Execute(ctx context.Context, cmd UpdateRequestCommand) (*dto.RequestDTO, error)
}

type TransitionStageExecutor interface {
	Execute(ctx context.Context, cmd TransitionStageCommand) (*dto.RequestDTO, error)
}

type DeleteRequestExecutor interface {
	Execute(ctx context.Context, cmd DeleteRequestCommand) error
}

type GetRequestExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.RequestDTO, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, query ListRequestsQuery) ([]*dto.RequestDTO, error)
}

type GetStatsExecutor interface {
	Execute(ctx context.Context) (*dto.StatsDTO, error)
}
