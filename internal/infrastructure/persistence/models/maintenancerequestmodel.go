package models

import "github.com/gearguard/gearguard/internal/shared/constants"

// MaintenanceRequestModel stores timestamps as unix milliseconds and the
// scheduled date as a YYYY-MM-DD string in the business timezone, so range
// filters compare lexically and never shift across timezones.
type MaintenanceRequestModel struct {
	ID                uint    `gorm:"primaryKey"`
	Subject           string  `gorm:"size:200;not null"`
	Description       string  `gorm:"type:text"`
	Type              string  `gorm:"size:20;not null"`
	Priority          string  `gorm:"size:20;not null;index"`
	Stage             string  `gorm:"size:20;not null;index"`
	EquipmentID       uint    `gorm:"not null;index"`
	RequesterID       uint    `gorm:"not null;index"`
	AssignedTeamID    *uint   `gorm:"index"`
	AssignedToID      *uint   `gorm:"index"`
	ScheduledDate     *string `gorm:"size:10;index"`
	EstimatedDuration *float64
	Notes             string `gorm:"type:text"`
	IsOverdue         bool   `gorm:"not null;default:false;index"`
	CompletedAt       *int64 `gorm:"index"`
	Version           int    `gorm:"not null;default:1"`
	CreatedAt         int64  `gorm:"not null;index"`
	UpdatedAt         int64  `gorm:"not null"`
}

func (MaintenanceRequestModel) TableName() string {
	return constants.TableMaintenanceRequests
}
