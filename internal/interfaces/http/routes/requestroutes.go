package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gearguard/gearguard/internal/domain/user"
	"github.com/gearguard/gearguard/internal/interfaces/http/handlers"
	"github.com/gearguard/gearguard/internal/interfaces/http/middleware"
)

type RequestRouteConfig struct {
	RequestHandler *handlers.RequestHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRequestRoutes(api *gin.RouterGroup, config *RequestRouteConfig) {
	staff := middleware.RequireRoles(user.RoleAdmin, user.RoleManager, user.RoleTechnician)
	managers := middleware.RequireRoles(user.RoleAdmin, user.RoleManager)

	requests := api.Group("/requests")
	requests.Use(config.AuthMiddleware.RequireAuth())
	{
		requests.GET("", config.RequestHandler.ListRequests)
		requests.POST("", config.RequestHandler.CreateRequest)

		// Named views are registered before /:id.
		requests.GET("/stage/:stage", config.RequestHandler.ListByStage)
		requests.GET("/team/:teamId", config.RequestHandler.ListByTeam)
		requests.GET("/overdue", config.RequestHandler.ListOverdue)
		requests.GET("/urgent", config.RequestHandler.ListUrgent)
		requests.GET("/calendar", config.RequestHandler.ListCalendar)
		requests.GET("/stats", config.RequestHandler.GetStats)

		requests.GET("/:id", config.RequestHandler.GetRequest)
		requests.PUT("/:id", staff, config.RequestHandler.UpdateRequest)
		requests.PATCH("/:id/stage", staff, config.RequestHandler.TransitionStage)
		requests.DELETE("/:id", managers, config.RequestHandler.DeleteRequest)
	}
}
