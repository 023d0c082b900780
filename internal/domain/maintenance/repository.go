package maintenance

import (
	"context"
	"time"

	vo "github.com/gearguard/gearguard/internal/domain/maintenance/valueobjects"
)

// Filter narrows List. Zero values mean "no restriction". Results are always in
// board order: stage, then priority descending, then newest first.
type Filter struct {
	Stages        []vo.Stage
	TeamID        *uint
	AssignedToID  *uint
	OverdueOnly   bool
	UrgentOnly    bool
	ScheduledFrom *time.Time
	ScheduledTo   *time.Time
	Limit         int
}

type Repository interface {
	Create(ctx context.Context, request *Request) error
	// GetByID returns nil, nil when the request does not exist.
	GetByID(ctx context.Context, id uint) (*Request, error)
	// Update fails with a conflict error when the stored version moved on.
	Update(ctx context.Context, request *Request) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter) ([]*Request, error)
	CountByStage(ctx context.Context) (map[vo.Stage]int64, error)
	CountOverdue(ctx context.Context) (int64, error)
	CountCompletedBetween(ctx context.Context, from, to time.Time) (int64, error)
}
