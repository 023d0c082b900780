package http

import (
	"github.com/gearguard/gearguard/internal/domain/audit"
	"github.com/gearguard/gearguard/internal/domain/equipment"
	"github.com/gearguard/gearguard/internal/domain/maintenance"
	"github.com/gearguard/gearguard/internal/domain/notification"
	"github.com/gearguard/gearguard/internal/domain/team"
	"github.com/gearguard/gearguard/internal/domain/user"
	"github.com/gearguard/gearguard/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	requestRepo      maintenance.Repository
	equipmentRepo    equipment.Repository
	userRepo         user.Repository
	teamRepo         team.Repository
	auditRepo        audit.Repository
	notificationRepo notification.Repository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		requestRepo:      repository.NewMaintenanceRequestRepository(c.db),
		equipmentRepo:    repository.NewEquipmentRepository(c.db),
		userRepo:         repository.NewUserRepository(c.db),
		teamRepo:         repository.NewTeamRepository(c.db),
		auditRepo:        repository.NewAuditLogRepository(c.db),
		notificationRepo: repository.NewNotificationRepository(c.db),
	}
}
