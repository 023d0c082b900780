package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gearguard/gearguard/internal/domain/user"
	"github.com/gearguard/gearguard/internal/interfaces/http/handlers"
	"github.com/gearguard/gearguard/internal/interfaces/http/middleware"
)

type AuditRouteConfig struct {
	AuditLogHandler *handlers.AuditLogHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupAuditRoutes exposes the audit trail to admins and managers only.
func SetupAuditRoutes(api *gin.RouterGroup, config *AuditRouteConfig) {
	logs := api.Group("/audit-logs")
	logs.Use(config.AuthMiddleware.RequireAuth(), middleware.RequireRoles(user.RoleAdmin, user.RoleManager))
	{
		logs.GET("", config.AuditLogHandler.ListAuditLogs)
		logs.GET("/recent", config.AuditLogHandler.ListRecent)
		logs.GET("/range", config.AuditLogHandler.ListByDateRange)
		logs.GET("/entity/:type/:id", config.AuditLogHandler.ListForEntity)
		logs.GET("/user/:userId", config.AuditLogHandler.ListForUser)
	}
}
