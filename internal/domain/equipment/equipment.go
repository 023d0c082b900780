// Package equipment models the physical assets maintenance requests are raised against.
package equipment

import (
	"fmt"
	"time"

	"github.com/gearguard/gearguard/internal/shared/biztime"
)

type Status string

const (
	StatusActive      Status = "ACTIVE"
	StatusMaintenance Status = "MAINTENANCE"
	StatusInactive    Status = "INACTIVE"
	StatusScrapped    Status = "SCRAPPED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusMaintenance, StatusInactive, StatusScrapped:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

type Equipment struct {
	id           uint
	name         string
	serialNumber string
	category     string
	location     string
	status       Status
	healthScore  int
	notes        string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewEquipment(name, serialNumber, category, location string, now time.Time) (*Equipment, error) {
	if name == "" {
		return nil, fmt.Errorf("equipment name is required")
	}
	if serialNumber == "" {
		return nil, fmt.Errorf("serial number is required")
	}
	return &Equipment{
		name:         name,
		serialNumber: serialNumber,
		category:     category,
		location:     location,
		status:       StatusActive,
		healthScore:  100,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructEquipment(
	id uint,
	name, serialNumber, category, location string,
	status Status,
	healthScore int,
	notes string,
	createdAt, updatedAt time.Time,
) (*Equipment, error) {
	if id == 0 {
		return nil, fmt.Errorf("equipment ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid equipment status: %s", status)
	}
	return &Equipment{
		id:           id,
		name:         name,
		serialNumber: serialNumber,
		category:     category,
		location:     location,
		status:       status,
		healthScore:  healthScore,
		notes:        notes,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (e *Equipment) ID() uint             { return e.id }
func (e *Equipment) Name() string         { return e.name }
func (e *Equipment) SerialNumber() string { return e.serialNumber }
func (e *Equipment) Category() string     { return e.category }
func (e *Equipment) Location() string     { return e.location }
func (e *Equipment) Status() Status       { return e.status }
func (e *Equipment) HealthScore() int     { return e.healthScore }
func (e *Equipment) Notes() string        { return e.notes }
func (e *Equipment) CreatedAt() time.Time { return e.createdAt }
func (e *Equipment) UpdatedAt() time.Time { return e.updatedAt }

func (e *Equipment) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("equipment ID is already set")
	}
	e.id = id
	return nil
}

// Retire marks the equipment INACTIVE because request requestID was scrapped
// and appends one annotation line to the notes. It returns the status held
// before the call. Nothing in this package ever reactivates retired equipment.
func (e *Equipment) Retire(requestID uint, subject string, at time.Time) Status {
	previous := e.status
	e.status = StatusInactive

	annotation := ScrapAnnotation(requestID, subject, at)
	if e.notes != "" {
		e.notes += "\n" + annotation
	} else {
		e.notes = annotation
	}
	e.updatedAt = at
	return previous
}

// ScrapAnnotation formats the notes line written when a request scraps equipment.
func ScrapAnnotation(requestID uint, subject string, at time.Time) string {
	return fmt.Sprintf("[SCRAPPED] %s - Request #%d: %s", biztime.FormatDate(at), requestID, subject)
}
