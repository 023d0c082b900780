package sweep

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/gearguard/gearguard/internal/application/maintenance/dto"
	"github.com/gearguard/gearguard/internal/application/maintenance/usecases"
	vo "github.com/gearguard/gearguard/internal/domain/maintenance/valueobjects"
	"github.com/gearguard/gearguard/internal/domain/user"
	"github.com/gearguard/gearguard/internal/infrastructure/email"
	"github.com/gearguard/gearguard/internal/shared/biztime"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

// DailyDigestJob sends managers the pending counts and every technician with
// pending work the list of their own requests.
type DailyDigestJob struct {
	requests   RequestLister
	recipients RecipientFinder
	renderer   DigestRenderer
	emails     EmailEnqueuer
	clock      clockwork.Clock
	logger     logger.Interface
}

func NewDailyDigestJob(
	requests RequestLister,
	recipients RecipientFinder,
	renderer DigestRenderer,
	emails EmailEnqueuer,
	clock clockwork.Clock,
	logger logger.Interface,
) *DailyDigestJob {
	return &DailyDigestJob{
		requests:   requests,
		recipients: recipients,
		renderer:   renderer,
		emails:     emails,
		clock:      clock,
		logger:     logger,
	}
}

// Execute returns the number of digests enqueued.
func (j *DailyDigestJob) Execute(ctx context.Context) (int, error) {
	var (
		pending     []*dto.RequestDTO
		managers    []*user.User
		technicians []*user.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pending, err = j.requests.Execute(gctx, usecases.ListRequestsQuery{})
		if err != nil {
			return fmt.Errorf("failed to list requests: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		managers, err = j.recipients.ListActiveByRoles(gctx, user.ElevatedRoles...)
		if err != nil {
			return fmt.Errorf("failed to list managers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		technicians, err = j.recipients.ListActiveByRoles(gctx, user.RoleTechnician)
		if err != nil {
			return fmt.Errorf("failed to list technicians: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	pending = pendingOnly(pending)
	summary := summarize(pending, biztime.FormatDate(j.clock.Now()))
	byAssignee := tasksByAssignee(pending)

	sent := 0
	for _, m := range managers {
		if j.send(ctx, "manager digest", recipientOf(m), func(to email.Recipient) (*email.Message, error) {
			return j.renderer.ManagerDigest(to, summary)
		}) {
			sent++
		}
	}

	for _, t := range technicians {
		tasks := byAssignee[t.ID()]
		if len(tasks) == 0 {
			continue
		}
		if j.send(ctx, "technician digest", recipientOf(t), func(to email.Recipient) (*email.Message, error) {
			return j.renderer.TechnicianDigest(to, tasks)
		}) {
			sent++
		}
	}

	j.logger.Infow("daily digest sweep finished",
		"pending", summary.PendingCount,
		"managers", len(managers),
		"technicians", len(technicians),
		"sent", sent)
	return sent, nil
}

func (j *DailyDigestJob) send(ctx context.Context, kind string, to email.Recipient, build func(email.Recipient) (*email.Message, error)) bool {
	msg, err := build(to)
	if err != nil {
		j.logger.Errorw("failed to render "+kind, "to", to.Email, "error", err)
		return false
	}
	if err := j.emails.Enqueue(ctx, msg); err != nil {
		j.logger.Errorw("failed to enqueue "+kind, "to", to.Email, "error", err)
		return false
	}
	return true
}

func pendingOnly(reqs []*dto.RequestDTO) []*dto.RequestDTO {
	out := make([]*dto.RequestDTO, 0, len(reqs))
	for _, r := range reqs {
		if stage := vo.Stage(r.Stage); stage.IsValid() && !stage.IsTerminal() {
			out = append(out, r)
		}
	}
	return out
}

func summarize(pending []*dto.RequestDTO, date string) email.ManagerDigestView {
	v := email.ManagerDigestView{Date: date, PendingCount: len(pending)}
	for _, r := range pending {
		switch vo.Stage(r.Stage) {
		case vo.StageNew:
			v.NewCount++
		case vo.StageInProgress:
			v.InProgressCount++
		}
		if r.IsOverdue {
			v.OverdueCount++
		}
	}
	return v
}

func tasksByAssignee(pending []*dto.RequestDTO) map[uint][]email.TechnicianTask {
	out := make(map[uint][]email.TechnicianTask)
	for _, r := range pending {
		if r.AssignedToID == nil {
			continue
		}
		out[*r.AssignedToID] = append(out[*r.AssignedToID], email.TechnicianTask{
			Subject:       r.Subject,
			EquipmentName: r.EquipmentName,
			Priority:      r.Priority,
			Stage:         r.Stage,
		})
	}
	return out
}
