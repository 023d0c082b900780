package mappers

import (
	"github.com/gearguard/gearguard/internal/domain/equipment"
	"github.com/gearguard/gearguard/internal/infrastructure/persistence/models"
)

type EquipmentMapper interface {
	ToModel(e *equipment.Equipment) *models.EquipmentModel
	ToDomain(model *models.EquipmentModel) (*equipment.Equipment, error)
}

type EquipmentMapperImpl struct{}

func NewEquipmentMapper() EquipmentMapper {
	return &EquipmentMapperImpl{}
}

func (m *EquipmentMapperImpl) ToModel(e *equipment.Equipment) *models.EquipmentModel {
	return &models.EquipmentModel{
		ID:           e.ID(),
		Name:         e.Name(),
		SerialNumber: e.SerialNumber(),
		Category:     e.Category(),
		Location:     e.Location(),
		Status:       e.Status().String(),
		HealthScore:  e.HealthScore(),
		Notes:        e.Notes(),
		CreatedAt:    e.CreatedAt().UnixMilli(),
		UpdatedAt:    e.UpdatedAt().UnixMilli(),
	}
}

func (m *EquipmentMapperImpl) ToDomain(model *models.EquipmentModel) (*equipment.Equipment, error) {
	if model == nil {
		return nil, nil
	}
	return equipment.ReconstructEquipment(
		model.ID,
		model.Name,
		model.SerialNumber,
		model.Category,
		model.Location,
		equipment.Status(model.Status),
		model.HealthScore,
		model.Notes,
		fromMilli(model.CreatedAt),
		fromMilli(model.UpdatedAt),
	)
}
