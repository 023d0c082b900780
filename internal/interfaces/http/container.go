package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/gearguard/gearguard/internal/infrastructure/config"
	"github.com/gearguard/gearguard/internal/infrastructure/email"
	"github.com/gearguard/gearguard/internal/infrastructure/scheduler"
	"github.com/gearguard/gearguard/internal/interfaces/http/middleware"
	"github.com/gearguard/gearguard/internal/shared/logger"
	"github.com/gearguard/gearguard/internal/shared/services/markdown"
)

const (
	queueRedis = "redis"

	// DrainTimeout bounds how long a one-shot command waits for queued emails.
	DrainTimeout = 30 * time.Second
)

// Container holds the infrastructure components, repositories, use cases,
// handlers and background services, and wires them together.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	clock  clockwork.Clock
	redis  *redis.Client

	// Outbound email
	renderer   *email.Renderer
	redisQueue *email.RedisQueue
	dispatcher *email.Dispatcher

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware

	schedulerManager *scheduler.SchedulerManager
}

func NewContainer(db *gorm.DB, cfg *config.Config, clock clockwork.Clock, log logger.Interface) (*Container, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		clock:  clock,
	}

	if err := c.initEmail(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initUseCases()
	c.initHandlers()

	return c, nil
}

func (c *Container) initEmail() error {
	renderer, err := email.NewRenderer(c.cfg.Server.FrontendURL, markdown.NewRenderer())
	if err != nil {
		return fmt.Errorf("failed to build email renderer: %w", err)
	}
	c.renderer = renderer

	emailLog := logger.WithComponent("email")
	dc := c.cfg.Dispatcher

	var queue email.Queue
	if dc.Queue == queueRedis {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})
		c.redisQueue = email.NewRedisQueue(c.redis, dc.QueueKey, emailLog)
		queue = c.redisQueue
	} else {
		queue = email.NewMemoryQueue(dc.BufferSize)
	}

	c.dispatcher = email.NewDispatcher(queue, email.NewSender(c.cfg.Email, emailLog), dc.Workers, emailLog)
	return nil
}

// StartEmail recovers messages a crashed worker left behind and starts delivery.
func (c *Container) StartEmail(ctx context.Context) {
	if c.redisQueue != nil {
		if n, err := c.redisQueue.RequeueInFlight(ctx); err != nil {
			c.log.Warnw("failed to requeue in-flight emails", "error", err)
		} else if n > 0 {
			c.log.Infow("requeued in-flight emails", "count", n)
		}
	}
	c.dispatcher.Start(ctx)
}

// StartScheduler registers the sweep jobs and starts the cron scheduler.
func (c *Container) StartScheduler() error {
	sc := c.cfg.Scheduler
	if !sc.Enabled {
		c.log.Infow("scheduler disabled")
		return nil
	}

	mgr, err := scheduler.NewSchedulerManager(logger.WithComponent("scheduler"), sc.JobTimeout, gocron.WithClock(c.clock))
	if err != nil {
		return err
	}

	err = mgr.RegisterSweepJobs(scheduler.SweepSchedule{
		OverdueAlertCron:   sc.OverdueAlertCron,
		DailyDigestCron:    sc.DailyDigestCron,
		OverdueRefreshCron: sc.OverdueRefreshCron,
	}, c.SweepJobs())
	if err != nil {
		return err
	}

	mgr.Start()
	c.schedulerManager = mgr
	return nil
}

func (c *Container) SweepJobs() scheduler.SweepJobs {
	return scheduler.SweepJobs{
		OverdueAlert:   c.ucs.overdueAlert,
		DailyDigest:    c.ucs.dailyDigest,
		OverdueRefresh: c.ucs.overdueRefresh,
	}
}

// DrainEmail delivers what is already queued and stops the email workers.
func (c *Container) DrainEmail(ctx context.Context) error {
	return c.dispatcher.Drain(ctx)
}

// Shutdown stops the scheduler first so no sweep enqueues into a stopped dispatcher.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}

	c.dispatcher.Stop()

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
