// Package maintenance holds the maintenance request aggregate and its lifecycle rules.
package maintenance

import (
	"fmt"
	"strings"
	"time"

	"github.com/gearguard/gearguard/internal/domain/audit"
	vo "github.com/gearguard/gearguard/internal/domain/maintenance/valueobjects"
	"github.com/gearguard/gearguard/internal/shared/biztime"
	"github.com/gearguard/gearguard/internal/shared/constants"
)

const (
	maxSubjectLength     = 200
	maxDescriptionLength = 5000
)

// Request is a unit of maintenance work against one piece of equipment.
// isOverdue and completedAt are derived and only change through the methods below.
type Request struct {
	id                uint
	subject           string
	description       string
	requestType       vo.RequestType
	priority          vo.Priority
	stage             vo.Stage
	equipmentID       uint
	requesterID       uint
	assignedTeamID    *uint
	assignedToID      *uint
	scheduledDate     *time.Time
	estimatedDuration *float64
	notes             string
	isOverdue         bool
	completedAt       *time.Time
	version           int
	createdAt         time.Time
	updatedAt         time.Time
}

type NewRequestParams struct {
	Subject           string
	Description       string
	Type              vo.RequestType
	Priority          vo.Priority
	EquipmentID       uint
	RequesterID       uint
	AssignedTeamID    *uint
	AssignedToID      *uint
	ScheduledDate     *time.Time
	EstimatedDuration *float64
	Notes             string
}

// NewRequest creates a request in stage NEW. A scheduled date already in the
// past makes the new request overdue immediately.
func NewRequest(p NewRequestParams, now time.Time) (*Request, error) {
	if p.Type == "" {
		p.Type = vo.DefaultRequestType
	}
	if p.Priority == "" {
		p.Priority = vo.DefaultPriority
	}
	if err := validateFields(p.Subject, p.Description, p.Type, p.Priority, p.EstimatedDuration); err != nil {
		return nil, err
	}
	if p.EquipmentID == 0 {
		return nil, fmt.Errorf("equipment ID is required")
	}
	if p.RequesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}

	r := &Request{
		subject:           strings.TrimSpace(p.Subject),
		description:       p.Description,
		requestType:       p.Type,
		priority:          p.Priority,
		stage:             vo.StageNew,
		equipmentID:       p.EquipmentID,
		requesterID:       p.RequesterID,
		assignedTeamID:    p.AssignedTeamID,
		assignedToID:      p.AssignedToID,
		scheduledDate:     normalizeDate(p.ScheduledDate),
		estimatedDuration: p.EstimatedDuration,
		notes:             p.Notes,
		version:           1,
		createdAt:         now,
		updatedAt:         now,
	}
	r.isOverdue = r.overdueAt(now)
	return r, nil
}

type ReconstructParams struct {
	ID                uint
	Subject           string
	Description       string
	Type              vo.RequestType
	Priority          vo.Priority
	Stage             vo.Stage
	EquipmentID       uint
	RequesterID       uint
	AssignedTeamID    *uint
	AssignedToID      *uint
	ScheduledDate     *time.Time
	EstimatedDuration *float64
	Notes             string
	IsOverdue         bool
	CompletedAt       *time.Time
	Version           int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ReconstructRequest rebuilds a persisted request without re-deriving any field.
func ReconstructRequest(p ReconstructParams) (*Request, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if !p.Stage.IsValid() {
		return nil, fmt.Errorf("invalid stage: %s", p.Stage)
	}
	if !p.Priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", p.Priority)
	}
	if !p.Type.IsValid() {
		return nil, fmt.Errorf("invalid request type: %s", p.Type)
	}

	return &Request{
		id:                p.ID,
		subject:           p.Subject,
		description:       p.Description,
		requestType:       p.Type,
		priority:          p.Priority,
		stage:             p.Stage,
		equipmentID:       p.EquipmentID,
		requesterID:       p.RequesterID,
		assignedTeamID:    p.AssignedTeamID,
		assignedToID:      p.AssignedToID,
		scheduledDate:     p.ScheduledDate,
		estimatedDuration: p.EstimatedDuration,
		notes:             p.Notes,
		isOverdue:         p.IsOverdue,
		completedAt:       p.CompletedAt,
		version:           p.Version,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
	}, nil
}

func (r *Request) ID() uint                      { return r.id }
func (r *Request) Subject() string               { return r.subject }
func (r *Request) Description() string           { return r.description }
func (r *Request) Type() vo.RequestType          { return r.requestType }
func (r *Request) Priority() vo.Priority         { return r.priority }
func (r *Request) Stage() vo.Stage               { return r.stage }
func (r *Request) EquipmentID() uint             { return r.equipmentID }
func (r *Request) RequesterID() uint             { return r.requesterID }
func (r *Request) AssignedTeamID() *uint         { return r.assignedTeamID }
func (r *Request) AssignedToID() *uint           { return r.assignedToID }
func (r *Request) ScheduledDate() *time.Time     { return r.scheduledDate }
func (r *Request) EstimatedDuration() *float64   { return r.estimatedDuration }
func (r *Request) Notes() string                 { return r.notes }
func (r *Request) IsOverdue() bool               { return r.isOverdue }
func (r *Request) CompletedAt() *time.Time       { return r.completedAt }
func (r *Request) Version() int                  { return r.version }
func (r *Request) CreatedAt() time.Time          { return r.createdAt }
func (r *Request) UpdatedAt() time.Time          { return r.updatedAt }
func (r *Request) IsCompleted() bool             { return r.stage.IsTerminal() }
func (r *Request) IsAssignedTo(userID uint) bool { return r.assignedToID != nil && *r.assignedToID == userID }

func (r *Request) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

// Changes replaces every editable field. A nil team, assignee, scheduled date
// or duration clears the stored value. EquipmentID 0 and empty Type or Priority
// keep the current value.
type Changes struct {
	Subject           string
	Description       string
	Type              vo.RequestType
	Priority          vo.Priority
	EquipmentID       uint
	AssignedTeamID    *uint
	AssignedToID      *uint
	ScheduledDate     *time.Time
	EstimatedDuration *float64
	Notes             string
}

// Apply edits the request and returns the resulting effects: always one UPDATE
// audit entry, preceded by a NotifyAssignee when a different technician is now assigned.
func (r *Request) Apply(c Changes, now time.Time) ([]SideEffect, error) {
	if c.Type == "" {
		c.Type = r.requestType
	}
	if c.Priority == "" {
		c.Priority = r.priority
	}
	if err := validateFields(c.Subject, c.Description, c.Type, c.Priority, c.EstimatedDuration); err != nil {
		return nil, err
	}

	before := r.snapshot()
	previousAssignee := r.assignedToID

	r.subject = strings.TrimSpace(c.Subject)
	r.description = c.Description
	r.requestType = c.Type
	r.priority = c.Priority
	if c.EquipmentID != 0 {
		r.equipmentID = c.EquipmentID
	}
	r.assignedTeamID = c.AssignedTeamID
	r.assignedToID = c.AssignedToID
	r.scheduledDate = normalizeDate(c.ScheduledDate)
	r.estimatedDuration = c.EstimatedDuration
	r.notes = c.Notes
	r.isOverdue = r.overdueAt(now)
	r.touch(now)

	var effects []SideEffect
	if c.AssignedToID != nil && (previousAssignee == nil || *previousAssignee != *c.AssignedToID) {
		effects = append(effects, NotifyAssignee{
			RequestID:  r.id,
			AssigneeID: *c.AssignedToID,
			Subject:    r.subject,
		})
	}
	effects = append(effects, RecordAudit{
		Action:     audit.ActionUpdate,
		EntityType: constants.EntityRequest,
		EntityID:   r.id,
		Details:    "Updated request: " + r.subject,
		OldValue:   before,
		NewValue:   r.snapshot(),
	})
	return effects, nil
}

// TransitionTo moves the request to target. Entering a terminal stage stamps
// completedAt and clears the overdue flag; SCRAP additionally retires the
// equipment. Leaving for a non-terminal stage clears completedAt and re-applies
// the overdue rule. Any stage may follow any other.
func (r *Request) TransitionTo(target vo.Stage, now time.Time) ([]SideEffect, error) {
	if !r.stage.CanTransitionTo(target) {
		return nil, fmt.Errorf("invalid stage: %s", target)
	}

	from := r.stage
	r.stage = target

	var effects []SideEffect
	if target.IsTerminal() {
		completedAt := now
		r.completedAt = &completedAt
		r.isOverdue = false
		if target == vo.StageScrap && r.equipmentID != 0 {
			effects = append(effects, RetireEquipment{
				EquipmentID: r.equipmentID,
				RequestID:   r.id,
				Subject:     r.subject,
				At:          now,
			})
		}
	} else {
		r.completedAt = nil
		r.isOverdue = r.overdueAt(now)
	}
	r.touch(now)

	effects = append(effects,
		RecordAudit{
			Action:     audit.ActionUpdate,
			EntityType: constants.EntityRequest,
			EntityID:   r.id,
			Details:    fmt.Sprintf("Stage changed: %s → %s for: %s", from, target, r.subject),
			OldValue:   audit.Snapshot{"stage": from.String()},
			NewValue:   audit.Snapshot{"stage": target.String()},
		},
		NotifyStageChanged{
			RequestID:   r.id,
			Subject:     r.subject,
			From:        from,
			To:          target,
			RequesterID: r.requesterID,
			AssigneeID:  r.assignedToID,
		},
	)
	return effects, nil
}

// RefreshOverdue re-applies the overdue rule at now and reports whether the flag changed.
func (r *Request) RefreshOverdue(now time.Time) bool {
	overdue := r.overdueAt(now)
	if overdue == r.isOverdue {
		return false
	}
	r.isOverdue = overdue
	r.touch(now)
	return true
}

// CreatedAudit describes the CREATE entry written once the request has an ID.
func (r *Request) CreatedAudit() RecordAudit {
	return RecordAudit{
		Action:     audit.ActionCreate,
		EntityType: constants.EntityRequest,
		EntityID:   r.id,
		Details:    fmt.Sprintf("Created request: %s (%s)", r.subject, r.priority),
		NewValue:   r.snapshot(),
	}
}

// DeletedAudit captures the subject before the record disappears.
func (r *Request) DeletedAudit() RecordAudit {
	return RecordAudit{
		Action:     audit.ActionDelete,
		EntityType: constants.EntityRequest,
		EntityID:   r.id,
		Details:    "Deleted request: " + r.subject,
		OldValue:   r.snapshot(),
	}
}

func (r *Request) overdueAt(now time.Time) bool {
	if r.stage.IsTerminal() || r.scheduledDate == nil {
		return false
	}
	return biztime.IsBeforeToday(*r.scheduledDate, now)
}

func (r *Request) touch(now time.Time) {
	r.updatedAt = now
	r.version++
}

func (r *Request) snapshot() audit.Snapshot {
	s := audit.Snapshot{
		"subject":     r.subject,
		"type":        r.requestType.String(),
		"priority":    r.priority.String(),
		"stage":       r.stage.String(),
		"equipmentId": r.equipmentID,
		"isOverdue":   r.isOverdue,
	}
	if r.assignedTeamID != nil {
		s["assignedTeamId"] = *r.assignedTeamID
	}
	if r.assignedToID != nil {
		s["assignedToId"] = *r.assignedToID
	}
	if r.scheduledDate != nil {
		s["scheduledDate"] = biztime.FormatDate(*r.scheduledDate)
	}
	return s
}

func validateFields(subject, description string, t vo.RequestType, p vo.Priority, duration *float64) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return fmt.Errorf("subject is required")
	}
	if len([]rune(subject)) > maxSubjectLength {
		return fmt.Errorf("subject exceeds maximum length of %d characters", maxSubjectLength)
	}
	if len([]rune(description)) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if !t.IsValid() {
		return fmt.Errorf("invalid request type: %s", t)
	}
	if !p.IsValid() {
		return fmt.Errorf("invalid priority: %s", p)
	}
	if duration != nil && *duration < 0 {
		return fmt.Errorf("estimated duration cannot be negative")
	}
	return nil
}

func normalizeDate(d *time.Time) *time.Time {
	if d == nil {
		return nil
	}
	date := biztime.DateOf(*d)
	return &date
}
