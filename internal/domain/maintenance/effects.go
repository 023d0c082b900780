package maintenance

import (
	"time"

	"github.com/gearguard/gearguard/internal/domain/audit"
	vo "github.com/gearguard/gearguard/internal/domain/maintenance/valueobjects"
)

// SideEffect is a command produced by a state change of a Request and carried
// out by the application layer after the request itself has been mutated.
// Effects are returned in the order they must run.
type SideEffect interface {
	sideEffect()
}

// RetireEquipment forces the referenced equipment to INACTIVE and appends a
// scrap annotation. It runs in the same transaction as the request write.
type RetireEquipment struct {
	EquipmentID uint
	RequestID   uint
	Subject     string
	At          time.Time
}

// RecordAudit appends one audit entry. Failure to record never undoes the mutation.
type RecordAudit struct {
	Action     audit.Action
	EntityType string
	EntityID   uint
	Details    string
	OldValue   audit.Snapshot
	NewValue   audit.Snapshot
}

// NotifyAssignee tells a newly assigned technician about the request.
type NotifyAssignee struct {
	RequestID  uint
	AssigneeID uint
	Subject    string
}

// NotifyStageChanged tells interested users that the request moved to Stage.
type NotifyStageChanged struct {
	RequestID   uint
	Subject     string
	From        vo.Stage
	To          vo.Stage
	RequesterID uint
	AssigneeID  *uint
}

func (RetireEquipment) sideEffect()    {}
func (RecordAudit) sideEffect()        {}
func (NotifyAssignee) sideEffect()     {}
func (NotifyStageChanged) sideEffect() {}
