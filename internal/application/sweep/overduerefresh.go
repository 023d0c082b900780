package sweep

import (
	"context"

	"github.com/gearguard/gearguard/internal/shared/logger"
)

// OverdueRefreshJob re-derives overdue flags shortly after midnight so the
// read-only sweeps of the new day see current values.
type OverdueRefreshJob struct {
	refresher OverdueRefresher
	logger    logger.Interface
}

func NewOverdueRefreshJob(refresher OverdueRefresher, logger logger.Interface) *OverdueRefreshJob {
	return &OverdueRefreshJob{refresher: refresher, logger: logger}
}

func (j *OverdueRefreshJob) Execute(ctx context.Context) (int, error) {
	changed, err := j.refresher.Execute(ctx)
	if err != nil {
		j.logger.Errorw("overdue refresh stopped early", "changed", changed, "error", err)
		return changed, err
	}
	return changed, nil
}
