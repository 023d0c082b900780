package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gearguard/gearguard/internal/interfaces/http/middleware"
	"github.com/gearguard/gearguard/internal/interfaces/http/routes"
	"github.com/gearguard/gearguard/internal/shared/utils"
)

// SetupRoutes mounts the middleware chain and every route group under /api.
func (c *Container) SetupRoutes() {
	c.engine.Use(
		middleware.RequestID(),
		middleware.Recovery(c.log),
		middleware.CustomLogger(c.log),
		middleware.CORS(c.cfg.Server.AllowedOrigins),
		middleware.SecurityHeaders(),
	)

	c.engine.GET("/health", func(ctx *gin.Context) {
		utils.SuccessResponse(ctx, http.StatusOK, "ok", gin.H{"status": "healthy"})
	})

	api := c.engine.Group("/api")

	routes.SetupRequestRoutes(api, &routes.RequestRouteConfig{
		RequestHandler: c.hdlrs.requestHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupNotificationRoutes(api, &routes.NotificationRouteConfig{
		NotificationHandler: c.hdlrs.notificationHandler,
		AuthMiddleware:      c.authMiddleware,
	})
	routes.SetupAuditRoutes(api, &routes.AuditRouteConfig{
		AuditLogHandler: c.hdlrs.auditLogHandler,
		AuthMiddleware:  c.authMiddleware,
	})

	c.engine.NoRoute(func(ctx *gin.Context) {
		utils.ErrorResponse(ctx, http.StatusNotFound, "route not found")
	})
}

func (c *Container) Engine() *gin.Engine {
	return c.engine
}
