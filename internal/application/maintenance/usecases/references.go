package usecases

import (
	"context"
	"fmt"

	"github.com/gearguard/gearguard/internal/domain/equipment"
	"github.com/gearguard/gearguard/internal/domain/team"
	"github.com/gearguard/gearguard/internal/domain/user"
	"github.com/gearguard/gearguard/internal/shared/errors"
)

// referenceChecker rejects commands that point at rows which do not exist.
type referenceChecker struct {
	equipmentRepo equipment.Repository
	userRepo      user.Repository
	teamRepo      team.Repository
}

// check skips zero ids and nil pointers.
func (c referenceChecker) check(ctx context.Context, equipmentID, requesterID uint, teamID, assigneeID *uint) error {
	if equipmentID != 0 {
		e, err := c.equipmentRepo.GetByID(ctx, equipmentID)
		if err != nil {
			return fmt.Errorf("failed to load equipment: %w", err)
		}
		if e == nil {
			return errors.NewNotFoundError("equipment not found", fmt.Sprintf("id: %d", equipmentID))
		}
	}

	if requesterID != 0 {
		if err := c.checkUser(ctx, requesterID, "requester not found"); err != nil {
			return err
		}
	}

	if teamID != nil {
		t, err := c.teamRepo.GetByID(ctx, *teamID)
		if err != nil {
			return fmt.Errorf("failed to load team: %w", err)
		}
		if t == nil {
			return errors.NewNotFoundError("team not found", fmt.Sprintf("id: %d", *teamID))
		}
	}

	if assigneeID != nil {
		if err := c.checkUser(ctx, *assigneeID, "assignee not found"); err != nil {
			return err
		}
	}
	return nil
}

func (c referenceChecker) checkUser(ctx context.Context, id uint, notFound string) error {
	u, err := c.userRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		return errors.NewNotFoundError(notFound, fmt.Sprintf("id: %d", id))
	}
	return nil
}
