package usecases

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearguard/gearguard/internal/domain/audit"
	"github.com/gearguard/gearguard/internal/domain/equipment"
	vo "github.com/gearguard/gearguard/internal/domain/maintenance/valueobjects"
	"github.com/gearguard/gearguard/internal/shared/constants"
	"github.com/gearguard/gearguard/internal/shared/errors"
)

func TestTransitionStageUseCase_Execute_ScrapRetiresEquipment(t *testing.T) {
	h := newHarness()
	created := h.seed(t, CreateRequestCommand{Subject: "Cracked frame"})

	result, err := h.transition.Execute(context.Background(), TransitionStageCommand{
		ID:      created.ID,
		Stage:   "SCRAP",
		ActorID: uintPtr(technicianID),
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StageScrap.String(), result.Stage)
	require.NotNil(t, result.CompletedAt)
	assert.Equal(t, testNow, *result.CompletedAt)

	press, _ := h.equipment.GetByID(context.Background(), pressID)
	assert.Equal(t, equipment.StatusInactive, press.Status())
	assert.Equal(t, "[SCRAPPED] 2026-04-15 - Request #1: Cracked frame", press.Notes())

	entries := h.audit.all()
	require.Len(t, entries, 3)

	assert.Equal(t, constants.EntityEquipment, entries[1].EntityType)
	assert.Equal(t, pressID, entries[1].EntityID)
	assert.Equal(t, audit.ActionUpdate, entries[1].Action)
	assert.Equal(t, "Equipment marked as INACTIVE due to scrap - Request #1", entries[1].Details)
	assert.Equal(t, "ACTIVE", entries[1].OldValue["status"])
	assert.Equal(t, "INACTIVE", entries[1].NewValue["status"])

	assert.Equal(t, constants.EntityRequest, entries[2].EntityType)
	assert.Equal(t, "Stage changed: NEW → SCRAP for: Cracked frame", entries[2].Details)
	for _, e := range entries[1:] {
		require.NotNil(t, e.ActorID)
		assert.Equal(t, technicianID, *e.ActorID)
	}
}

func TestTransitionStageUseCase_Execute_ScrapWithMissingEquipment(t *testing.T) {
	h := newHarness()
	created := h.seed(t, CreateRequestCommand{})
	delete(h.equipment.items, pressID)

	result, err := h.transition.Execute(context.Background(), TransitionStageCommand{ID: created.ID, Stage: "SCRAP"})

	require.NoError(t, err)
	assert.Equal(t, "SCRAP", result.Stage)
	assert.Empty(t, result.EquipmentName)
	assert.Len(t, h.audit.all(), 2)
	assert.Zero(t, h.equipment.updates)
}

func TestTransitionStageUseCase_Execute_Notifications(t *testing.T) {
	tests := []struct {
		name     string
		assignee *uint
		stage    string
		wantKind string
		wantUser uint
	}{
		{name: "repaired tells the requester", assignee: uintPtr(technicianID), stage: "REPAIRED", wantKind: "completed", wantUser: requesterID},
		{name: "in progress tells the assignee", assignee: uintPtr(technicianID), stage: "IN_PROGRESS", wantKind: "updated", wantUser: technicianID},
		{name: "unassigned move tells nobody", stage: "IN_PROGRESS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			created := h.seed(t, CreateRequestCommand{AssignedToID: tt.assignee})

			_, err := h.transition.Execute(context.Background(), TransitionStageCommand{ID: created.ID, Stage: tt.stage})
			require.NoError(t, err)

			calls := h.notifier.all()
			if tt.wantKind == "" {
				assert.Empty(t, calls)
				return
			}
			require.Len(t, calls, 1)
			assert.Equal(t, tt.wantKind, calls[0].kind)
			assert.Equal(t, tt.wantUser, calls[0].userID)
			if tt.wantKind == "updated" {
				assert.Equal(t, tt.stage, calls[0].stage)
			}
		})
	}
}

func TestTransitionStageUseCase_Execute_ReopenClearsCompletion(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	created := h.seed(t, CreateRequestCommand{ScheduledDate: datePtr(2026, time.April, 16)})

	repaired, err := h.transition.Execute(ctx, TransitionStageCommand{ID: created.ID, Stage: "REPAIRED"})
	require.NoError(t, err)
	require.NotNil(t, repaired.CompletedAt)
	assert.False(t, repaired.IsOverdue)

	h.clock.Advance(72 * time.Hour)

	reopened, err := h.transition.Execute(ctx, TransitionStageCommand{ID: created.ID, Stage: "NEW"})
	require.NoError(t, err)
	assert.Nil(t, reopened.CompletedAt)
	assert.True(t, reopened.IsOverdue)
}

func TestTransitionStageUseCase_Execute_Errors(t *testing.T) {
	h := newHarness()
	created := h.seed(t, CreateRequestCommand{})

	_, err := h.transition.Execute(context.Background(), TransitionStageCommand{ID: created.ID, Stage: "DONE"})
	assert.True(t, errors.IsInvalidStateError(err))

	_, err = h.transition.Execute(context.Background(), TransitionStageCommand{ID: 999, Stage: "REPAIRED"})
	assert.True(t, errors.IsNotFoundError(err))

	assert.Len(t, h.audit.all(), 1)
	assert.Equal(t, "NEW", h.requests.get(created.ID).Stage().String())
}

func TestTransitionStageUseCase_Execute_ConcurrentScrapsKeepEveryAnnotation(t *testing.T) {
	h := newHarness()
	const requests = 8

	ids := make([]uint, 0, requests)
	for i := 0; i < requests; i++ {
		created := h.seed(t, CreateRequestCommand{Subject: fmt.Sprintf("Fault %d", i+1)})
		ids = append(ids, created.ID)
	}

	start := make(chan struct{})
	var wg sync.WaitGroup
	errs := make(chan error, requests)
	for _, id := range ids {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			<-start
			_, err := h.transition.Execute(context.Background(), TransitionStageCommand{ID: id, Stage: "SCRAP"})
			errs <- err
		}(id)
	}
	close(start)
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	press := h.equipment.get(pressID)
	assert.Equal(t, equipment.StatusInactive, press.Status())
	lines := strings.Split(press.Notes(), "\n")
	assert.Len(t, lines, requests)
	for i, id := range ids {
		assert.Contains(t, press.Notes(), equipment.ScrapAnnotation(id, fmt.Sprintf("Fault %d", i+1), testNow))
	}
	assert.Equal(t, requests, h.equipment.updates)
}
