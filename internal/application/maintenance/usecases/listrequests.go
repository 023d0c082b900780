package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/gearguard/gearguard/internal/application/maintenance/dto"
	"github.com/gearguard/gearguard/internal/domain/maintenance"
	vo "github.com/gearguard/gearguard/internal/domain/maintenance/valueobjects"
	"github.com/gearguard/gearguard/internal/shared/errors"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

// ListRequestsQuery combines the board filters. An empty query lists every
// request in board order.
type ListRequestsQuery struct {
	Stage        string
	TeamID       *uint
	AssignedToID *uint
	OverdueOnly  bool
	// UrgentOnly keeps pending requests that are overdue or CRITICAL.
	UrgentOnly bool
	// From and To bound the scheduled date, both inclusive. Setting either
	// excludes unscheduled requests.
	From  *time.Time
	To    *time.Time
	Limit int
}

type ListRequestsUseCase struct {
	repo     maintenance.Repository
	resolver *RequestResolver
	logger   logger.Interface
}

func NewListRequestsUseCase(repo maintenance.Repository, resolver *RequestResolver, logger logger.Interface) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
	}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) ([]*dto.RequestDTO, error) {
	filter, err := query.toFilter()
	if err != nil {
		return nil, err
	}

	reqs, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list requests", "error", err)
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return uc.resolver.ResolveAll(ctx, reqs), nil
}

func (q ListRequestsQuery) toFilter() (maintenance.Filter, error) {
	filter := maintenance.Filter{
		TeamID:        q.TeamID,
		AssignedToID:  q.AssignedToID,
		OverdueOnly:   q.OverdueOnly,
		UrgentOnly:    q.UrgentOnly,
		ScheduledFrom: q.From,
		ScheduledTo:   q.To,
		Limit:         q.Limit,
	}
	if q.Stage != "" {
		stage, err := vo.NewStage(q.Stage)
		if err != nil {
			return maintenance.Filter{}, errors.NewValidationError(err.Error())
		}
		filter.Stages = []vo.Stage{stage}
	}
	if q.From != nil && q.To != nil && q.To.Before(*q.From) {
		return maintenance.Filter{}, errors.NewValidationError("invalid date range", "to must not be before from")
	}
	if q.Limit < 0 {
		return maintenance.Filter{}, errors.NewValidationError("limit cannot be negative")
	}
	return filter, nil
}
