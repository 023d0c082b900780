package handlers

import (
	"context"
	"time"

	auditapp "github.com/gearguard/gearguard/internal/application/audit"
	"github.com/gearguard/gearguard/internal/application/maintenance/dto"
	"github.com/gearguard/gearguard/internal/application/maintenance/usecases"
	notificationdto "github.com/gearguard/gearguard/internal/application/notification/dto"
)

type mockCreateRequestUC struct {
	got    usecases.CreateRequestCommand
	result *dto.RequestDTO
	err    error
}

func (m *mockCreateRequestUC) Execute(ctx context.Context, cmd usecases.CreateRequestCommand) (*dto.RequestDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockUpdateRequestUC struct {
	got    usecases.UpdateRequestCommand
	result *dto.RequestDTO
	err    error
}

func (m *mockUpdateRequestUC) Execute(ctx context.Context, cmd usecases.UpdateRequestCommand) (*dto.RequestDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockTransitionStageUC struct {
	got    usecases.TransitionStageCommand
	result *dto.RequestDTO
	err    error
}

func (m *mockTransitionStageUC) Execute(ctx context.Context, cmd usecases.TransitionStageCommand) (*dto.RequestDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockDeleteRequestUC struct {
	got usecases.DeleteRequestCommand
	err error
}

func (m *mockDeleteRequestUC) Execute(ctx context.Context, cmd usecases.DeleteRequestCommand) error {
	m.got = cmd
	return m.err
}

type mockGetRequestUC struct {
	result *dto.RequestDTO
	err    error
}

func (m *mockGetRequestUC) Execute(ctx context.Context, id uint) (*dto.RequestDTO, error) {
	return m.result, m.err
}

type mockListRequestsUC struct {
	calls  int
	got    usecases.ListRequestsQuery
	result []*dto.RequestDTO
	err    error
}

func (m *mockListRequestsUC) Execute(ctx context.Context, query usecases.ListRequestsQuery) ([]*dto.RequestDTO, error) {
	m.calls++
	m.got = query
	return m.result, m.err
}

type mockGetStatsUC struct {
	result *dto.StatsDTO
	err    error
}

func (m *mockGetStatsUC) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	return m.result, m.err
}

type mockNotificationService struct {
	GetUserNotificationsFunc   func(ctx context.Context, userID uint) ([]*notificationdto.NotificationDTO, error)
	GetUnreadNotificationsFunc func(ctx context.Context, userID uint) ([]*notificationdto.NotificationDTO, error)
	GetUnreadCountFunc         func(ctx context.Context, userID uint) (*notificationdto.UnreadCountResponse, error)
	MarkAsReadFunc             func(ctx context.Context, id uint, userID uint) error
	MarkAllAsReadFunc          func(ctx context.Context, userID uint) (*notificationdto.MarkAllAsReadResponse, error)
}

func (m *mockNotificationService) GetUserNotifications(ctx context.Context, userID uint) ([]*notificationdto.NotificationDTO, error) {
	return m.GetUserNotificationsFunc(ctx, userID)
}

func (m *mockNotificationService) GetUnreadNotifications(ctx context.Context, userID uint) ([]*notificationdto.NotificationDTO, error) {
	return m.GetUnreadNotificationsFunc(ctx, userID)
}

func (m *mockNotificationService) GetUnreadCount(ctx context.Context, userID uint) (*notificationdto.UnreadCountResponse, error) {
	return m.GetUnreadCountFunc(ctx, userID)
}

func (m *mockNotificationService) MarkAsRead(ctx context.Context, id uint, userID uint) error {
	return m.MarkAsReadFunc(ctx, id, userID)
}

func (m *mockNotificationService) MarkAllAsRead(ctx context.Context, userID uint) (*notificationdto.MarkAllAsReadResponse, error) {
	return m.MarkAllAsReadFunc(ctx, userID)
}

type mockAuditService struct {
	GetRecentAuditLogsFunc      func(ctx context.Context) ([]*auditapp.AuditLogDTO, error)
	GetAuditLogsForEntityFunc   func(ctx context.Context, entityType string, entityID uint) ([]*auditapp.AuditLogDTO, error)
	GetAuditLogsForUserFunc     func(ctx context.Context, userID uint) ([]*auditapp.AuditLogDTO, error)
	GetAllAuditLogsFunc         func(ctx context.Context, page, pageSize int) ([]*auditapp.AuditLogDTO, int64, error)
	GetAuditLogsByDateRangeFunc func(ctx context.Context, from, to time.Time) ([]*auditapp.AuditLogDTO, error)
}

func (m *mockAuditService) GetRecentAuditLogs(ctx context.Context) ([]*auditapp.AuditLogDTO, error) {
	return m.GetRecentAuditLogsFunc(ctx)
}

func (m *mockAuditService) GetAuditLogsForEntity(ctx context.Context, entityType string, entityID uint) ([]*auditapp.AuditLogDTO, error) {
	return m.GetAuditLogsForEntityFunc(ctx, entityType, entityID)
}

func (m *mockAuditService) GetAuditLogsForUser(ctx context.Context, userID uint) ([]*auditapp.AuditLogDTO, error) {
	return m.GetAuditLogsForUserFunc(ctx, userID)
}

func (m *mockAuditService) GetAllAuditLogs(ctx context.Context, page, pageSize int) ([]*auditapp.AuditLogDTO, int64, error) {
	return m.GetAllAuditLogsFunc(ctx, page, pageSize)
}

func (m *mockAuditService) GetAuditLogsByDateRange(ctx context.Context, from, to time.Time) ([]*auditapp.AuditLogDTO, error) {
	return m.GetAuditLogsByDateRangeFunc(ctx, from, to)
}
