package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_IsTerminal(t *testing.T) {
	tests := []struct {
		stage    Stage
		terminal bool
	}{
		{StageNew, false},
		{StageInProgress, false},
		{StageRepaired, true},
		{StageScrap, true},
	}
	for _, tt := range tests {
		t.Run(tt.stage.String(), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.stage.IsTerminal())
		})
	}
}

func TestStage_AnyValidTargetIsAllowed(t *testing.T) {
	for _, from := range AllStages() {
		for _, to := range AllStages() {
			assert.True(t, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
		assert.False(t, from.CanTransitionTo(Stage("ARCHIVED")))
	}
}

func TestNewStage(t *testing.T) {
	s, err := NewStage("IN_PROGRESS")
	require.NoError(t, err)
	assert.Equal(t, StageInProgress, s)

	_, err = NewStage("in_progress")
	assert.Error(t, err)
}

func TestPriority_Ordering(t *testing.T) {
	assert.True(t, PriorityCritical.IsHigherThan(PriorityHigh))
	assert.True(t, PriorityHigh.IsHigherThan(PriorityMedium))
	assert.True(t, PriorityMedium.IsHigherThan(PriorityLow))
	assert.False(t, PriorityLow.IsHigherThan(PriorityLow))
	assert.Equal(t, 0, Priority("URGENT").Rank())
}

func TestNewPriorityAndType(t *testing.T) {
	_, err := NewPriority("URGENT")
	assert.Error(t, err)

	rt, err := NewRequestType("PREVENTIVE")
	require.NoError(t, err)
	assert.Equal(t, RequestTypePreventive, rt)

	_, err = NewRequestType("EMERGENCY")
	assert.Error(t, err)
}

func TestPendingStages(t *testing.T) {
	for _, s := range PendingStages() {
		assert.False(t, s.IsTerminal())
	}
}
