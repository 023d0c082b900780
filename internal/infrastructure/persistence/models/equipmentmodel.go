package models

import "github.com/gearguard/gearguard/internal/shared/constants"

type EquipmentModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:200;not null"`
	SerialNumber string `gorm:"size:100;not null;uniqueIndex"`
	Category     string `gorm:"size:100"`
	Location     string `gorm:"size:200"`
	Status       string `gorm:"size:20;not null;default:ACTIVE;index"`
	HealthScore  int    `gorm:"not null;default:100"`
	Notes        string `gorm:"type:text"`
	CreatedAt    int64  `gorm:"not null"`
	UpdatedAt    int64  `gorm:"not null"`
}

func (EquipmentModel) TableName() string {
	return constants.TableEquipment
}
