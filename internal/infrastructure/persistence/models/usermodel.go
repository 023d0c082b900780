package models

import "github.com/gearguard/gearguard/internal/shared/constants"

type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	FullName  string `gorm:"size:100;not null"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	Role      string `gorm:"size:20;not null;index"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"not null"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}

type TeamModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;uniqueIndex"`
	Color     string `gorm:"size:7;not null"`
	CreatedAt int64  `gorm:"not null"`
}

func (TeamModel) TableName() string {
	return constants.TableTeams
}
