// Package sweep holds the timer-driven jobs that scan request state and send
// summary emails. The alert and digest jobs never write to requests.
package sweep

import (
	"context"

	"github.com/gearguard/gearguard/internal/application/maintenance/dto"
	"github.com/gearguard/gearguard/internal/application/maintenance/usecases"
	"github.com/gearguard/gearguard/internal/domain/user"
	"github.com/gearguard/gearguard/internal/infrastructure/email"
)

type RequestLister interface {
	Execute(ctx context.Context, query usecases.ListRequestsQuery) ([]*dto.RequestDTO, error)
}

type RecipientFinder interface {
	ListActiveByRoles(ctx context.Context, roles ...user.Role) ([]*user.User, error)
}

type DigestRenderer interface {
	OverdueAlert(to email.Recipient, total int, rows []email.OverdueRow) (*email.Message, error)
	ManagerDigest(to email.Recipient, v email.ManagerDigestView) (*email.Message, error)
	TechnicianDigest(to email.Recipient, tasks []email.TechnicianTask) (*email.Message, error)
}

type EmailEnqueuer interface {
	Enqueue(ctx context.Context, msg *email.Message) error
}

type OverdueRefresher interface {
	Execute(ctx context.Context) (int, error)
}

func recipientOf(u *user.User) email.Recipient {
	return email.Recipient{Email: u.Email(), Name: u.FullName()}
}
