// Package notification is the per-user notification store together with the
// fixed-template helpers the lifecycle engine calls.
package notification

import (
	"context"
	"fmt"

	"github.com/gearguard/gearguard/internal/application/notification/dto"
	"github.com/gearguard/gearguard/internal/application/notification/usecases"
	vo "github.com/gearguard/gearguard/internal/domain/notification/valueobjects"
	"github.com/gearguard/gearguard/internal/infrastructure/email"
	"github.com/gearguard/gearguard/internal/shared/constants"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

// AssignmentRenderer renders the rich assignment email.
type AssignmentRenderer interface {
	Assignment(to email.Recipient, v email.AssignmentView) (*email.Message, error)
}

// RequestRef identifies the maintenance request a notification is about.
type RequestRef struct {
	ID      uint
	Subject string
}

type NotificationService struct {
	logger   logger.Interface
	renderer AssignmentRenderer

	create        *usecases.CreateNotificationUseCase
	list          *usecases.ListNotificationsUseCase
	markAsRead    *usecases.MarkNotificationAsReadUseCase
	markAllAsRead *usecases.MarkAllAsReadUseCase
}

func NewNotificationService(
	create *usecases.CreateNotificationUseCase,
	list *usecases.ListNotificationsUseCase,
	markAsRead *usecases.MarkNotificationAsReadUseCase,
	markAllAsRead *usecases.MarkAllAsReadUseCase,
	renderer AssignmentRenderer,
	logger logger.Interface,
) *NotificationService {
	return &NotificationService{
		logger:        logger,
		renderer:      renderer,
		create:        create,
		list:          list,
		markAsRead:    markAsRead,
		markAllAsRead: markAllAsRead,
	}
}

func (s *NotificationService) Create(ctx context.Context, cmd usecases.CreateNotificationCommand) (*dto.NotificationDTO, error) {
	return s.create.Execute(ctx, cmd)
}

// NotifyRequestAssigned tells a technician about a new assignment and sends the
// assignment email built from view.
func (s *NotificationService) NotifyRequestAssigned(ctx context.Context, userID uint, req RequestRef, view email.AssignmentView) error {
	_, err := s.create.Execute(ctx, usecases.CreateNotificationCommand{
		UserID:            userID,
		Title:             "New Request Assigned",
		Message:           "You have been assigned to: " + req.Subject,
		Type:              vo.NotificationTypeRequestAssigned,
		RelatedEntityType: constants.RelatedEntityMaintenanceRequest,
		RelatedEntityID:   &req.ID,
		SendEmail:         true,
		Email: func(to email.Recipient) (*email.Message, error) {
			if view.TechnicianName == "" {
				view.TechnicianName = to.Name
			}
			return s.renderer.Assignment(to, view)
		},
	})
	return err
}

func (s *NotificationService) NotifyRequestUpdated(ctx context.Context, userID uint, req RequestRef, stage string) error {
	_, err := s.create.Execute(ctx, usecases.CreateNotificationCommand{
		UserID:            userID,
		Title:             "Request Updated",
		Message:           fmt.Sprintf("%s has been moved to %s", req.Subject, stage),
		Type:              vo.NotificationTypeRequestUpdated,
		RelatedEntityType: constants.RelatedEntityMaintenanceRequest,
		RelatedEntityID:   &req.ID,
	})
	return err
}

func (s *NotificationService) NotifyRequestCompleted(ctx context.Context, userID uint, req RequestRef) error {
	_, err := s.create.Execute(ctx, usecases.CreateNotificationCommand{
		UserID:            userID,
		Title:             "Request Completed",
		Message:           req.Subject + " has been marked as completed!",
		Type:              vo.NotificationTypeRequestCompleted,
		RelatedEntityType: constants.RelatedEntityMaintenanceRequest,
		RelatedEntityID:   &req.ID,
		SendEmail:         true,
	})
	return err
}

func (s *NotificationService) NotifyOverdue(ctx context.Context, userID uint, req RequestRef) error {
	_, err := s.create.Execute(ctx, usecases.CreateNotificationCommand{
		UserID:            userID,
		Title:             "⚠️ Overdue Request",
		Message:           req.Subject + " is overdue and needs immediate attention!",
		Type:              vo.NotificationTypeRequestOverdue,
		RelatedEntityType: constants.RelatedEntityMaintenanceRequest,
		RelatedEntityID:   &req.ID,
		SendEmail:         true,
	})
	return err
}

func (s *NotificationService) NotifyTeamAdded(ctx context.Context, userID uint, teamID uint, teamName string) error {
	_, err := s.create.Execute(ctx, usecases.CreateNotificationCommand{
		UserID:            userID,
		Title:             "Added to Team",
		Message:           fmt.Sprintf("You have been added to the %s team", teamName),
		Type:              vo.NotificationTypeTeamAdded,
		RelatedEntityType: constants.RelatedEntityTeam,
		RelatedEntityID:   &teamID,
		SendEmail:         true,
	})
	return err
}

func (s *NotificationService) GetUserNotifications(ctx context.Context, userID uint) ([]*dto.NotificationDTO, error) {
	return s.list.Execute(ctx, userID)
}

func (s *NotificationService) GetUnreadNotifications(ctx context.Context, userID uint) ([]*dto.NotificationDTO, error) {
	return s.list.ExecuteUnread(ctx, userID)
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uint) (*dto.UnreadCountResponse, error) {
	return s.list.ExecuteUnreadCount(ctx, userID)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id uint, userID uint) error {
	return s.markAsRead.Execute(ctx, id, userID)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uint) (*dto.MarkAllAsReadResponse, error) {
	updated, err := s.markAllAsRead.Execute(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.MarkAllAsReadResponse{Updated: updated}, nil
}
