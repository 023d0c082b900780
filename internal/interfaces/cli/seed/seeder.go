// Package seed fills an empty database with a small demo plant.
package seed

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gearguard/gearguard/internal/domain/equipment"
	"github.com/gearguard/gearguard/internal/domain/team"
	"github.com/gearguard/gearguard/internal/domain/user"
	"github.com/gearguard/gearguard/internal/infrastructure/persistence/models"
	"github.com/gearguard/gearguard/internal/infrastructure/repository"
	"github.com/gearguard/gearguard/internal/shared/db"
)

type Result struct {
	Teams     int
	Users     int
	Equipment int
}

var demoTeams = []struct{ name, color string }{
	{"Mechanics", "#3b82f6"},
	{"Electricians", "#f59e0b"},
}

var demoUsers = []struct {
	name  string
	email string
	role  user.Role
}{
	{"Ada Admin", "admin@gearguard.local", user.RoleAdmin},
	{"Max Manager", "manager@gearguard.local", user.RoleManager},
	{"Tom Tech", "tom@gearguard.local", user.RoleTechnician},
	{"Tara Tech", "tara@gearguard.local", user.RoleTechnician},
	{"Rita Requester", "rita@gearguard.local", user.RoleUser},
}

var demoEquipment = []struct{ name, serial, category, location string }{
	{"Hydraulic Press", "HP-001", "Press", "Plant A"},
	{"CNC Mill", "CNC-204", "Machining", "Plant A"},
	{"Forklift 3", "FL-003", "Vehicle", "Warehouse"},
	{"Air Compressor", "AC-110", "Utilities", "Plant B"},
}

// Seed inserts the demo rows in one transaction. It refuses to touch a
// database that already has users.
func Seed(ctx context.Context, gdb *gorm.DB, now time.Time) (*Result, error) {
	var existing int64
	if err := gdb.WithContext(ctx).Model(&models.UserModel{}).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if existing > 0 {
		return nil, fmt.Errorf("database already has %d users, refusing to seed", existing)
	}

	teams := repository.NewTeamRepository(gdb)
	users := repository.NewUserRepository(gdb)
	assets := repository.NewEquipmentRepository(gdb)

	res := &Result{}
	err := db.NewTransactionManager(gdb).RunInTransaction(ctx, func(ctx context.Context) error {
		for _, d := range demoTeams {
			t, err := team.NewTeam(d.name, d.color, now)
			if err != nil {
				return err
			}
			if err := teams.Create(ctx, t); err != nil {
				return err
			}
			res.Teams++
		}
		for _, d := range demoUsers {
			u, err := user.NewUser(d.name, d.email, d.role, now)
			if err != nil {
				return err
			}
			if err := users.Create(ctx, u); err != nil {
				return err
			}
			res.Users++
		}
		for _, d := range demoEquipment {
			e, err := equipment.NewEquipment(d.name, d.serial, d.category, d.location, now)
			if err != nil {
				return err
			}
			if err := assets.Create(ctx, e); err != nil {
				return err
			}
			res.Equipment++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed demo data: %w", err)
	}
	return res, nil
}
