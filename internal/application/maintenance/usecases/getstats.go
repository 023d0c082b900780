package usecases

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/gearguard/gearguard/internal/application/maintenance/dto"
	"github.com/gearguard/gearguard/internal/domain/maintenance"
	vo "github.com/gearguard/gearguard/internal/domain/maintenance/valueobjects"
	"github.com/gearguard/gearguard/internal/shared/biztime"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

type GetStatsUseCase struct {
	repo   maintenance.Repository
	clock  clockwork.Clock
	logger logger.Interface
}

func NewGetStatsUseCase(repo maintenance.Repository, clock clockwork.Clock, logger logger.Interface) *GetStatsUseCase {
	return &GetStatsUseCase{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// Execute reports every stage, including empty ones. Completed today means
// completedAt falls on the current business day.
func (uc *GetStatsUseCase) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	byStage, err := uc.repo.CountByStage(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count requests by stage", "error", err)
		return nil, fmt.Errorf("failed to count requests: %w", err)
	}

	overdue, err := uc.repo.CountOverdue(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count overdue requests", "error", err)
		return nil, fmt.Errorf("failed to count overdue requests: %w", err)
	}

	now := uc.clock.Now()
	completedToday, err := uc.repo.CountCompletedBetween(ctx, biztime.StartOfDayUTC(now), biztime.EndOfDayUTC(now))
	if err != nil {
		uc.logger.Errorw("failed to count completed requests", "error", err)
		return nil, fmt.Errorf("failed to count completed requests: %w", err)
	}

	stats := &dto.StatsDTO{
		ByStage:        make(map[string]int64, len(vo.AllStages())),
		Overdue:        overdue,
		CompletedToday: completedToday,
	}
	for _, stage := range vo.AllStages() {
		n := byStage[stage]
		stats.ByStage[stage.String()] = n
		stats.Total += n
		if !stage.IsTerminal() {
			stats.Pending += n
		}
	}
	return stats, nil
}
