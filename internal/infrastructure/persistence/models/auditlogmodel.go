package models

import (
	"gorm.io/datatypes"

	"github.com/gearguard/gearguard/internal/shared/constants"
)

// AuditLogModel rows are insert-only.
type AuditLogModel struct {
	ID         uint           `gorm:"primaryKey"`
	Action     string         `gorm:"size:20;not null;index"`
	EntityType string         `gorm:"size:50;not null;index:idx_audit_entity,priority:1"`
	EntityID   uint           `gorm:"not null;index:idx_audit_entity,priority:2"`
	Details    string         `gorm:"size:1000"`
	OldValue   datatypes.JSON `gorm:"type:json"`
	NewValue   datatypes.JSON `gorm:"type:json"`
	ActorID    *uint          `gorm:"index"`
	CreatedAt  int64          `gorm:"not null;index"`
}

func (AuditLogModel) TableName() string {
	return constants.TableAuditLogs
}
