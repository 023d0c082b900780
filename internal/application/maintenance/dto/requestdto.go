package dto

import (
	"time"

	"github.com/gearguard/gearguard/internal/domain/maintenance"
	"github.com/gearguard/gearguard/internal/shared/biztime"
)

// RequestDTO is the board view of a request. Display fields stay empty when
// the referenced row no longer exists.
type RequestDTO struct {
	ID                uint       `json:"id"`
	Subject           string     `json:"subject"`
	Description       string     `json:"description,omitempty"`
	Type              string     `json:"type"`
	Priority          string     `json:"priority"`
	Stage             string     `json:"stage"`
	EquipmentID       uint       `json:"equipmentId"`
	EquipmentName     string     `json:"equipmentName,omitempty"`
	EquipmentLocation string     `json:"equipmentLocation,omitempty"`
	EquipmentCategory string     `json:"equipmentCategory,omitempty"`
	RequesterID       uint       `json:"requestedById"`
	RequesterName     string     `json:"requestedByName,omitempty"`
	AssignedTeamID    *uint      `json:"assignedTeamId,omitempty"`
	AssignedTeamName  string     `json:"assignedTeamName,omitempty"`
	AssignedTeamColor string     `json:"assignedTeamColor,omitempty"`
	AssignedToID      *uint      `json:"assignedToId,omitempty"`
	AssignedToName    string     `json:"assignedToName,omitempty"`
	ScheduledDate     *string    `json:"scheduledDate,omitempty"`
	EstimatedDuration *float64   `json:"estimatedDuration,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	IsOverdue         bool       `json:"isOverdue"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
	Version           int        `json:"version"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// FromRequest copies the request's own fields; display names are filled by the resolver.
func FromRequest(r *maintenance.Request) *RequestDTO {
	d := &RequestDTO{
		ID:                r.ID(),
		Subject:           r.Subject(),
		Description:       r.Description(),
		Type:              r.Type().String(),
		Priority:          r.Priority().String(),
		Stage:             r.Stage().String(),
		EquipmentID:       r.EquipmentID(),
		RequesterID:       r.RequesterID(),
		AssignedTeamID:    r.AssignedTeamID(),
		AssignedToID:      r.AssignedToID(),
		EstimatedDuration: r.EstimatedDuration(),
		Notes:             r.Notes(),
		IsOverdue:         r.IsOverdue(),
		CompletedAt:       r.CompletedAt(),
		Version:           r.Version(),
		CreatedAt:         r.CreatedAt(),
		UpdatedAt:         r.UpdatedAt(),
	}
	if sd := r.ScheduledDate(); sd != nil {
		s := biztime.FormatDate(*sd)
		d.ScheduledDate = &s
	}
	return d
}

// StatsDTO feeds the dashboard counters.
type StatsDTO struct {
	Total          int64            `json:"total"`
	ByStage        map[string]int64 `json:"byStage"`
	Pending        int64            `json:"pending"`
	Overdue        int64            `json:"overdue"`
	CompletedToday int64            `json:"completedToday"`
}
