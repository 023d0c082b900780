// Package scheduler runs the periodic sweep jobs on gocron v2.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/gearguard/gearguard/internal/shared/biztime"
	"github.com/gearguard/gearguard/internal/shared/goroutine"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

// DefaultJobTimeout bounds a single firing when no timeout is configured.
const DefaultJobTimeout = 5 * time.Minute

// BatchJob is one sweep. Execute returns how many items it acted on.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SweepJobs groups the jobs registered by RegisterSweepJobs.
type SweepJobs struct {
	OverdueAlert   BatchJob
	DailyDigest    BatchJob
	OverdueRefresh BatchJob
}

// SweepSchedule holds the cron expressions for SweepJobs.
type SweepSchedule struct {
	OverdueAlertCron   string
	DailyDigestCron    string
	OverdueRefreshCron string
}

// SchedulerManager owns a single gocron scheduler for every sweep.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface
	timeout   time.Duration

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a scheduler that evaluates cron expressions in
// the business timezone. Extra options are appended, so a test can swap the clock.
func NewSchedulerManager(log logger.Interface, timeout time.Duration, opts ...gocron.SchedulerOption) (*SchedulerManager, error) {
	if timeout <= 0 {
		timeout = DefaultJobTimeout
	}

	options := append([]gocron.SchedulerOption{gocron.WithLocation(biztime.Location())}, opts...)
	scheduler, err := gocron.NewScheduler(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
		timeout:   timeout,
	}, nil
}

// RegisterSweepJobs registers the overdue alert, the daily digest and the
// overdue flag refresh. A nil job is skipped.
func (m *SchedulerManager) RegisterSweepJobs(schedule SweepSchedule, jobs SweepJobs) error {
	entries := []struct {
		name string
		cron string
		tags []string
		job  BatchJob
	}{
		{"overdue-alert", schedule.OverdueAlertCron, []string{"sweep", "email", "overdue"}, jobs.OverdueAlert},
		{"daily-digest", schedule.DailyDigestCron, []string{"sweep", "email", "digest"}, jobs.DailyDigest},
		{"overdue-refresh", schedule.OverdueRefreshCron, []string{"sweep", "overdue"}, jobs.OverdueRefresh},
	}

	for _, e := range entries {
		if e.job == nil {
			continue
		}
		if err := m.RegisterCronJob(e.name, e.cron, e.job, e.tags...); err != nil {
			return err
		}
	}

	m.logger.Infow("registered sweep jobs",
		"overdue_alert", schedule.OverdueAlertCron,
		"daily_digest", schedule.DailyDigestCron,
		"overdue_refresh", schedule.OverdueRefreshCron,
	)
	return nil
}

// RegisterCronJob schedules job on a five-field cron expression.
// Overlapping firings are skipped, not queued.
func (m *SchedulerManager) RegisterCronJob(name, cron string, job BatchJob, tags ...string) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob(cron, false),
		gocron.NewTask(func() {
			m.execute(name, job)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags(tags...),
		gocron.WithName(name),
	)
	if err != nil {
		return fmt.Errorf("failed to register job %s (%q): %w", name, cron, err)
	}
	return nil
}

func (m *SchedulerManager) execute(name string, job BatchJob) {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	m.logger.Debugw("scheduled job started", "job", name)
	startTime := time.Now()

	var (
		count int
		err   error
	)
	panicked := goroutine.Recover(m.logger, name, func() {
		count, err = job.Execute(ctx)
	})
	if panicked {
		return
	}

	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return
		}
		m.logger.Errorw("scheduled job failed",
			"job", name,
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if count > 0 {
		m.logger.Infow("scheduled job completed",
			"job", name,
			"count", count,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("scheduled job had nothing to do",
			"job", name,
			"duration", time.Since(startTime),
		)
	}
}

// Start starts the scheduler. Calling it twice is a no-op.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits for running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
