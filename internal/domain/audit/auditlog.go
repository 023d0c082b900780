// Package audit models the append-only trail of actions taken against entities.
// An AuditLog has no mutators; once persisted it is never changed or removed.
package audit

import (
	"fmt"
	"time"
)

const maxDetailsLength = 1000

type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionUpload Action = "UPLOAD"
)

var validActions = map[Action]bool{
	ActionCreate: true,
	ActionUpdate: true,
	ActionDelete: true,
	ActionUpload: true,
}

func (a Action) String() string { return string(a) }

func (a Action) IsValid() bool { return validActions[a] }

// Snapshot is a flat field/value view of an entity before or after an action.
type Snapshot map[string]any

type AuditLog struct {
	id         uint
	action     Action
	entityType string
	entityID   uint
	details    string
	oldValue   Snapshot
	newValue   Snapshot
	actorID    *uint
	createdAt  time.Time
}

func NewAuditLog(
	action Action,
	entityType string,
	entityID uint,
	details string,
	oldValue, newValue Snapshot,
	actorID *uint,
	at time.Time,
) (*AuditLog, error) {
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid audit action: %s", action)
	}
	if entityType == "" {
		return nil, fmt.Errorf("entity type is required")
	}
	if r := []rune(details); len(r) > maxDetailsLength {
		details = string(r[:maxDetailsLength])
	}

	return &AuditLog{
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		details:    details,
		oldValue:   oldValue,
		newValue:   newValue,
		actorID:    actorID,
		createdAt:  at,
	}, nil
}

func ReconstructAuditLog(
	id uint,
	action Action,
	entityType string,
	entityID uint,
	details string,
	oldValue, newValue Snapshot,
	actorID *uint,
	createdAt time.Time,
) *AuditLog {
	return &AuditLog{
		id:         id,
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		details:    details,
		oldValue:   oldValue,
		newValue:   newValue,
		actorID:    actorID,
		createdAt:  createdAt,
	}
}

func (l *AuditLog) ID() uint             { return l.id }
func (l *AuditLog) Action() Action       { return l.action }
func (l *AuditLog) EntityType() string   { return l.entityType }
func (l *AuditLog) EntityID() uint       { return l.entityID }
func (l *AuditLog) Details() string      { return l.details }
func (l *AuditLog) OldValue() Snapshot   { return l.oldValue }
func (l *AuditLog) NewValue() Snapshot   { return l.newValue }
func (l *AuditLog) ActorID() *uint       { return l.actorID }
func (l *AuditLog) CreatedAt() time.Time { return l.createdAt }

// SetID is called once by the repository after insert.
func (l *AuditLog) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("audit log ID is already set")
	}
	l.id = id
	return nil
}
