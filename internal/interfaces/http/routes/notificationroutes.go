package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gearguard/gearguard/internal/interfaces/http/handlers"
	"github.com/gearguard/gearguard/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(api *gin.RouterGroup, config *NotificationRouteConfig) {
	notifications := api.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", config.NotificationHandler.ListNotifications)
		notifications.GET("/unread", config.NotificationHandler.ListUnread)
		notifications.GET("/unread-count", config.NotificationHandler.GetUnreadCount)

		notifications.PATCH("/read-all", config.NotificationHandler.MarkAllAsRead)
		notifications.PATCH("/:id/read", config.NotificationHandler.MarkAsRead)
	}
}
