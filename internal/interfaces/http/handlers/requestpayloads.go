package handlers

import (
	"time"

	"github.com/gearguard/gearguard/internal/shared/biztime"
	"github.com/gearguard/gearguard/internal/shared/errors"
)

// RequestPayload is the JSON body of create and update.
// ScheduledDate is a calendar date in YYYY-MM-DD form.
type RequestPayload struct {
	Subject           string   `json:"subject" binding:"required"`
	Description       string   `json:"description"`
	Type              string   `json:"type"`
	Priority          string   `json:"priority"`
	EquipmentID       uint     `json:"equipmentId"`
	AssignedTeamID    *uint    `json:"assignedTeamId"`
	AssignedToID      *uint    `json:"assignedToId"`
	ScheduledDate     *string  `json:"scheduledDate"`
	EstimatedDuration *float64 `json:"estimatedDuration"`
	Notes             string   `json:"notes"`
}

type StagePayload struct {
	Stage string `json:"stage" binding:"required"`
}

func (p RequestPayload) scheduledDate() (*time.Time, error) {
	if p.ScheduledDate == nil || *p.ScheduledDate == "" {
		return nil, nil
	}
	d, err := biztime.ParseDate(*p.ScheduledDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid scheduledDate", "expected YYYY-MM-DD")
	}
	return &d, nil
}

func parseDateQuery(name, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, errors.NewValidationError(name + " is required")
	}
	d, err := biztime.ParseDate(raw)
	if err != nil {
		return nil, errors.NewValidationError("invalid "+name, "expected YYYY-MM-DD")
	}
	return &d, nil
}
