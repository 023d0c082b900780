package usecases

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/gearguard/gearguard/internal/application/notification/dto"
	"github.com/gearguard/gearguard/internal/domain/notification"
	vo "github.com/gearguard/gearguard/internal/domain/notification/valueobjects"
	"github.com/gearguard/gearguard/internal/domain/user"
	"github.com/gearguard/gearguard/internal/infrastructure/email"
	"github.com/gearguard/gearguard/internal/shared/errors"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

type CreateNotificationCommand struct {
	UserID            uint
	Title             string
	Message           string
	Type              vo.NotificationType
	RelatedEntityType string
	RelatedEntityID   *uint
	SendEmail         bool
	// Email replaces the generic notification email when SendEmail is set.
	Email EmailBuilder
}

type CreateNotificationUseCase struct {
	repo     notification.Repository
	userRepo user.Repository
	renderer EmailRenderer
	emails   EmailEnqueuer
	clock    clockwork.Clock
	logger   logger.Interface
}

func NewCreateNotificationUseCase(
	repo notification.Repository,
	userRepo user.Repository,
	renderer EmailRenderer,
	emails EmailEnqueuer,
	clock clockwork.Clock,
	logger logger.Interface,
) *CreateNotificationUseCase {
	return &CreateNotificationUseCase{
		repo:     repo,
		userRepo: userRepo,
		renderer: renderer,
		emails:   emails,
		clock:    clock,
		logger:   logger,
	}
}

// Execute persists the notification, then enqueues its email on a best-effort
// basis. An unknown user yields nil, nil without writing anything.
func (uc *CreateNotificationUseCase) Execute(ctx context.Context, cmd CreateNotificationCommand) (*dto.NotificationDTO, error) {
	recipient, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load notification recipient", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load notification recipient")
	}
	if recipient == nil {
		uc.logger.Warnw("skipping notification for unknown user", "user_id", cmd.UserID, "title", cmd.Title)
		return nil, nil
	}

	now := uc.clock.Now()
	n, err := notification.NewNotification(
		cmd.UserID,
		cmd.Type,
		cmd.Title,
		cmd.Message,
		cmd.RelatedEntityType,
		cmd.RelatedEntityID,
		now,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, n); err != nil {
		uc.logger.Errorw("failed to create notification", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to create notification")
	}

	uc.logger.Infow("notification created",
		"notification_id", n.ID(),
		"user_id", cmd.UserID,
		"type", n.Type())

	if cmd.SendEmail {
		uc.sendEmail(ctx, recipient, cmd)
	}

	return dto.ToNotificationDTO(n, now), nil
}

func (uc *CreateNotificationUseCase) sendEmail(ctx context.Context, recipient *user.User, cmd CreateNotificationCommand) {
	to := email.Recipient{Email: recipient.Email(), Name: recipient.FullName()}

	var (
		msg *email.Message
		err error
	)
	if cmd.Email != nil {
		msg, err = cmd.Email(to)
	} else {
		msg, err = uc.renderer.Notification(to, cmd.Title, cmd.Message)
	}
	if err != nil {
		uc.logger.Errorw("failed to render notification email", "user_id", cmd.UserID, "to", to.Email, "error", err)
		return
	}

	if err := uc.emails.Enqueue(ctx, msg); err != nil {
		uc.logger.Errorw("failed to enqueue notification email", "user_id", cmd.UserID, "to", to.Email, "error", err)
	}
}
