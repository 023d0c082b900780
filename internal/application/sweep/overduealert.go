package sweep

import (
	"context"
	"fmt"

	"github.com/gearguard/gearguard/internal/application/maintenance/usecases"
	"github.com/gearguard/gearguard/internal/domain/user"
	"github.com/gearguard/gearguard/internal/infrastructure/email"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

const unassigned = "Unassigned"

// OverdueAlertJob mails every manager and admin a summary of overdue requests.
type OverdueAlertJob struct {
	requests   RequestLister
	recipients RecipientFinder
	renderer   DigestRenderer
	emails     EmailEnqueuer
	logger     logger.Interface
}

func NewOverdueAlertJob(
	requests RequestLister,
	recipients RecipientFinder,
	renderer DigestRenderer,
	emails EmailEnqueuer,
	logger logger.Interface,
) *OverdueAlertJob {
	return &OverdueAlertJob{
		requests:   requests,
		recipients: recipients,
		renderer:   renderer,
		emails:     emails,
		logger:     logger,
	}
}

// Execute returns the number of alerts enqueued. With nothing overdue it
// sends nothing and does not look up recipients.
func (j *OverdueAlertJob) Execute(ctx context.Context) (int, error) {
	overdue, err := j.requests.Execute(ctx, usecases.ListRequestsQuery{OverdueOnly: true})
	if err != nil {
		return 0, fmt.Errorf("failed to list overdue requests: %w", err)
	}
	if len(overdue) == 0 {
		j.logger.Debugw("no overdue requests")
		return 0, nil
	}

	managers, err := j.recipients.ListActiveByRoles(ctx, user.ElevatedRoles...)
	if err != nil {
		return 0, fmt.Errorf("failed to list alert recipients: %w", err)
	}

	rows := make([]email.OverdueRow, 0, email.MaxOverdueRows)
	for _, r := range overdue {
		if len(rows) == email.MaxOverdueRows {
			break
		}
		assignee := r.AssignedToName
		if assignee == "" {
			assignee = unassigned
		}
		rows = append(rows, email.OverdueRow{
			Subject:       r.Subject,
			EquipmentName: r.EquipmentName,
			Priority:      r.Priority,
			AssigneeName:  assignee,
		})
	}

	sent := 0
	for _, m := range managers {
		to := recipientOf(m)
		msg, err := j.renderer.OverdueAlert(to, len(overdue), rows)
		if err != nil {
			j.logger.Errorw("failed to render overdue alert", "to", to.Email, "error", err)
			continue
		}
		if err := j.emails.Enqueue(ctx, msg); err != nil {
			j.logger.Errorw("failed to enqueue overdue alert", "to", to.Email, "error", err)
			continue
		}
		sent++
	}

	j.logger.Infow("overdue alert sweep finished",
		"overdue", len(overdue),
		"recipients", len(managers),
		"sent", sent)
	return sent, nil
}
