package http

import (
	auditapp "github.com/gearguard/gearguard/internal/application/audit"
	"github.com/gearguard/gearguard/internal/application/maintenance/usecases"
	notificationapp "github.com/gearguard/gearguard/internal/application/notification"
	notificationUsecases "github.com/gearguard/gearguard/internal/application/notification/usecases"
	"github.com/gearguard/gearguard/internal/application/sweep"
	"github.com/gearguard/gearguard/internal/shared/db"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

// allUseCases holds the lifecycle use cases, the services they call and the sweep jobs.
type allUseCases struct {
	auditService        *auditapp.AuditService
	notificationService *notificationapp.NotificationService

	createRequest   *usecases.CreateRequestUseCase
	updateRequest   *usecases.UpdateRequestUseCase
	transitionStage *usecases.TransitionStageUseCase
	deleteRequest   *usecases.DeleteRequestUseCase
	getRequest      *usecases.GetRequestUseCase
	listRequests    *usecases.ListRequestsUseCase
	getStats        *usecases.GetStatsUseCase
	refreshOverdue  *usecases.RefreshOverdueUseCase

	overdueAlert   *sweep.OverdueAlertJob
	dailyDigest    *sweep.DailyDigestJob
	overdueRefresh *sweep.OverdueRefreshJob
}

func (c *Container) initUseCases() {
	r := c.repos
	tx := db.NewTransactionManager(c.db)
	locker := usecases.NewRequestLocker()

	auditService := auditapp.NewAuditService(r.auditRepo, c.clock, logger.WithComponent("audit"))

	notificationLog := logger.WithComponent("notification")
	notificationService := notificationapp.NewNotificationService(
		notificationUsecases.NewCreateNotificationUseCase(r.notificationRepo, r.userRepo, c.renderer, c.dispatcher, c.clock, notificationLog),
		notificationUsecases.NewListNotificationsUseCase(r.notificationRepo, c.clock, notificationLog),
		notificationUsecases.NewMarkNotificationAsReadUseCase(r.notificationRepo, c.clock, notificationLog),
		notificationUsecases.NewMarkAllAsReadUseCase(r.notificationRepo, c.clock, notificationLog),
		c.renderer,
		notificationLog,
	)

	log := logger.WithComponent("maintenance")
	resolver := usecases.NewRequestResolver(r.equipmentRepo, r.userRepo, r.teamRepo, log)
	effects := usecases.NewEffectRunner(r.equipmentRepo, auditService, notificationService, resolver, log)
	executor := usecases.NewCommandExecutor(locker, tx, effects)

	ucs := &allUseCases{
		auditService:        auditService,
		notificationService: notificationService,

		createRequest:   usecases.NewCreateRequestUseCase(r.requestRepo, r.equipmentRepo, r.userRepo, r.teamRepo, tx, effects, resolver, c.clock, log),
		updateRequest:   usecases.NewUpdateRequestUseCase(r.requestRepo, r.equipmentRepo, r.userRepo, r.teamRepo, executor, effects, resolver, c.clock, log),
		transitionStage: usecases.NewTransitionStageUseCase(r.requestRepo, executor, effects, resolver, c.clock, log),
		deleteRequest:   usecases.NewDeleteRequestUseCase(r.requestRepo, executor, log),
		getRequest:      usecases.NewGetRequestUseCase(r.requestRepo, resolver, log),
		listRequests:    usecases.NewListRequestsUseCase(r.requestRepo, resolver, log),
		getStats:        usecases.NewGetStatsUseCase(r.requestRepo, c.clock, log),
		refreshOverdue:  usecases.NewRefreshOverdueUseCase(r.requestRepo, locker, tx, c.clock, log),
	}

	sweepLog := logger.WithComponent("sweep")
	ucs.overdueAlert = sweep.NewOverdueAlertJob(ucs.listRequests, r.userRepo, c.renderer, c.dispatcher, sweepLog)
	ucs.dailyDigest = sweep.NewDailyDigestJob(ucs.listRequests, r.userRepo, c.renderer, c.dispatcher, c.clock, sweepLog)
	ucs.overdueRefresh = sweep.NewOverdueRefreshJob(ucs.refreshOverdue, sweepLog)

	c.ucs = ucs
}
