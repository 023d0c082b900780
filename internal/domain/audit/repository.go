package audit

import (
	"context"
	"time"
)

// Repository only appends and reads; there is deliberately no Update or Delete.
type Repository interface {
	Create(ctx context.Context, log *AuditLog) error
	ListRecent(ctx context.Context, limit int) ([]*AuditLog, error)
	ListByEntity(ctx context.Context, entityType string, entityID uint) ([]*AuditLog, error)
	ListByActor(ctx context.Context, actorID uint) ([]*AuditLog, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*AuditLog, error)
	List(ctx context.Context, page, pageSize int) ([]*AuditLog, int64, error)
}
