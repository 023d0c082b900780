package audit

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuditLog(t *testing.T) {
	actor := uint(3)
	at := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	log, err := NewAuditLog(ActionUpdate, "Request", 9, "Stage changed: NEW → SCRAP for: Pump leak",
		Snapshot{"stage": "NEW"}, Snapshot{"stage": "SCRAP"}, &actor, at)
	require.NoError(t, err)

	assert.Equal(t, ActionUpdate, log.Action())
	assert.Equal(t, uint(9), log.EntityID())
	assert.Equal(t, "NEW", log.OldValue()["stage"])
	assert.Equal(t, &actor, log.ActorID())
	assert.Equal(t, at, log.CreatedAt())
}

func TestNewAuditLog_Validation(t *testing.T) {
	_, err := NewAuditLog(Action("ARCHIVE"), "Request", 1, "x", nil, nil, nil, time.Now())
	assert.Error(t, err)

	_, err = NewAuditLog(ActionCreate, "", 1, "x", nil, nil, nil, time.Now())
	assert.Error(t, err)
}

func TestNewAuditLog_TruncatesLongDetails(t *testing.T) {
	log, err := NewAuditLog(ActionCreate, "Request", 1, strings.Repeat("a", 1500), nil, nil, nil, time.Now())
	require.NoError(t, err)
	assert.Len(t, log.Details(), 1000)
}

func TestSetID_OnlyOnce(t *testing.T) {
	log, err := NewAuditLog(ActionDelete, "Request", 1, "Deleted request: Pump", nil, nil, nil, time.Now())
	require.NoError(t, err)

	require.NoError(t, log.SetID(5))
	assert.Error(t, log.SetID(6))
	assert.Equal(t, uint(5), log.ID())
}
