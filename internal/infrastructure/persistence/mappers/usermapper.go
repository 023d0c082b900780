package mappers

import (
	"github.com/gearguard/gearguard/internal/domain/team"
	"github.com/gearguard/gearguard/internal/domain/user"
	"github.com/gearguard/gearguard/internal/infrastructure/persistence/models"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:        u.ID(),
		FullName:  u.FullName(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		Active:    u.IsActive(),
		CreatedAt: u.CreatedAt().UnixMilli(),
	}
}

func UserToDomain(model *models.UserModel) *user.User {
	return user.ReconstructUser(model.ID, model.FullName, model.Email, user.Role(model.Role), model.Active, fromMilli(model.CreatedAt))
}

func TeamToModel(t *team.Team) *models.TeamModel {
	return &models.TeamModel{
		ID:        t.ID(),
		Name:      t.Name(),
		Color:     t.Color(),
		CreatedAt: t.CreatedAt().UnixMilli(),
	}
}

func TeamToDomain(model *models.TeamModel) *team.Team {
	return team.ReconstructTeam(model.ID, model.Name, model.Color, fromMilli(model.CreatedAt))
}
