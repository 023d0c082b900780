package mappers

import (
	"fmt"

	"github.com/gearguard/gearguard/internal/domain/maintenance"
	vo "github.com/gearguard/gearguard/internal/domain/maintenance/valueobjects"
	"github.com/gearguard/gearguard/internal/infrastructure/persistence/models"
)

// MaintenanceRequestMapper converts between the request aggregate and its row.
type MaintenanceRequestMapper interface {
	ToModel(r *maintenance.Request) *models.MaintenanceRequestModel
	ToDomain(model *models.MaintenanceRequestModel) (*maintenance.Request, error)
}

type MaintenanceRequestMapperImpl struct{}

func NewMaintenanceRequestMapper() MaintenanceRequestMapper {
	return &MaintenanceRequestMapperImpl{}
}

func (m *MaintenanceRequestMapperImpl) ToModel(r *maintenance.Request) *models.MaintenanceRequestModel {
	return &models.MaintenanceRequestModel{
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
		ScheduledDate:     toDatePtr(r.ScheduledDate()),
		EstimatedDuration: r.EstimatedDuration(),
		Notes:             r.Notes(),
		IsOverdue:         r.IsOverdue(),
		CompletedAt:       toMilliPtr(r.CompletedAt()),
		Version:           r.Version(),
		CreatedAt:         r.CreatedAt().UnixMilli(),
		UpdatedAt:         r.UpdatedAt().UnixMilli(),
	}
}

func (m *MaintenanceRequestMapperImpl) ToDomain(model *models.MaintenanceRequestModel) (*maintenance.Request, error) {
	if model == nil {
		return nil, nil
	}

	scheduled, err := fromDatePtr(model.ScheduledDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scheduled date of request %d: %w", model.ID, err)
	}

	r, err := maintenance.ReconstructRequest(maintenance.ReconstructParams{
		ID:                model.ID,
		Subject:           model.Subject,
		Description:       model.Description,
		Type:              vo.RequestType(model.Type),
		Priority:          vo.Priority(model.Priority),
		Stage:             vo.Stage(model.Stage),
		EquipmentID:       model.EquipmentID,
		RequesterID:       model.RequesterID,
		AssignedTeamID:    model.AssignedTeamID,
		AssignedToID:      model.AssignedToID,
		ScheduledDate:     scheduled,
		EstimatedDuration: model.EstimatedDuration,
		Notes:             model.Notes,
		IsOverdue:         model.IsOverdue,
		CompletedAt:       fromMilliPtr(model.CompletedAt),
		Version:           model.Version,
		CreatedAt:         fromMilli(model.CreatedAt),
		UpdatedAt:         fromMilli(model.UpdatedAt),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct request %d: %w", model.ID, err)
	}
	return r, nil
}
