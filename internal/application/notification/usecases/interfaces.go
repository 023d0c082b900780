package usecases

import (
	"context"

	"github.com/gearguard/gearguard/internal/infrastructure/email"
)

// EmailRenderer builds the generic notification email.
type EmailRenderer interface {
	Notification(to email.Recipient, title, message string) (*email.Message, error)
}

// EmailEnqueuer hands a rendered message to the outbound queue.
type EmailEnqueuer interface {
	Enqueue(ctx context.Context, msg *email.Message) error
}

// EmailBuilder renders a custom email for the resolved recipient.
type EmailBuilder func(to email.Recipient) (*email.Message, error)
