package http

import (
	"github.com/gearguard/gearguard/internal/infrastructure/auth"
	"github.com/gearguard/gearguard/internal/interfaces/http/handlers"
	"github.com/gearguard/gearguard/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	requestHandler      *handlers.RequestHandler
	notificationHandler *handlers.NotificationHandler
	auditLogHandler     *handlers.AuditLogHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	c.hdlrs = &allHandlers{
		requestHandler: handlers.NewRequestHandler(
			u.createRequest,
			u.updateRequest,
			u.transitionStage,
			u.deleteRequest,
			u.getRequest,
			u.listRequests,
			u.getStats,
			c.log,
		),
		notificationHandler: handlers.NewNotificationHandler(u.notificationService, c.log),
		auditLogHandler:     handlers.NewAuditLogHandler(u.auditService, c.log),
	}

	verifier := auth.NewJWTVerifier(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.Issuer, c.clock)
	c.authMiddleware = middleware.NewAuthMiddleware(verifier, c.log)
}
