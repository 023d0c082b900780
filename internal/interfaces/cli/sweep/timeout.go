package sweep

import (
	"time"

	"github.com/gearguard/gearguard/internal/infrastructure/scheduler"
)

func jobTimeout(configured time.Duration) time.Duration {
	if configured <= 0 {
		return scheduler.DefaultJobTimeout
	}
	return configured
}
