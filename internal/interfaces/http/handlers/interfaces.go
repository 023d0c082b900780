package handlers

import (
	"context"
	"time"

	auditapp "github.com/gearguard/gearguard/internal/application/audit"
	"github.com/gearguard/gearguard/internal/application/notification/dto"
)

// Service interfaces for the handlers - enables unit testing with mocks.

type notificationService interface {
	GetUserNotifications(ctx context.Context, userID uint) ([]*dto.NotificationDTO, error)
	GetUnreadNotifications(ctx context.Context, userID uint) ([]*dto.NotificationDTO, error)
	GetUnreadCount(ctx context.Context, userID uint) (*dto.UnreadCountResponse, error)
	MarkAsRead(ctx context.Context, id uint, userID uint) error
	MarkAllAsRead(ctx context.Context, userID uint) (*dto.MarkAllAsReadResponse, error)
}

type auditService interface {
	GetRecentAuditLogs(ctx context.Context) ([]*auditapp.AuditLogDTO, error)
	GetAuditLogsForEntity(ctx context.Context, entityType string, entityID uint) ([]*auditapp.AuditLogDTO, error)
	GetAuditLogsForUser(ctx context.Context, userID uint) ([]*auditapp.AuditLogDTO, error)
	GetAllAuditLogs(ctx context.Context, page, pageSize int) ([]*auditapp.AuditLogDTO, int64, error)
	GetAuditLogsByDateRange(ctx context.Context, from, to time.Time) ([]*auditapp.AuditLogDTO, error)
}
