package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/gearguard/gearguard/internal/domain/audit"
	"github.com/gearguard/gearguard/internal/infrastructure/persistence/models"
)

type AuditLogMapper interface {
	ToModel(l *audit.AuditLog) (*models.AuditLogModel, error)
	ToDomain(model *models.AuditLogModel) (*audit.AuditLog, error)
}

type AuditLogMapperImpl struct{}

func NewAuditLogMapper() AuditLogMapper {
	return &AuditLogMapperImpl{}
}

func (m *AuditLogMapperImpl) ToModel(l *audit.AuditLog) (*models.AuditLogModel, error) {
	oldValue, err := snapshotToJSON(l.OldValue())
	if err != nil {
		return nil, fmt.Errorf("failed to encode old value: %w", err)
	}
	newValue, err := snapshotToJSON(l.NewValue())
	if err != nil {
		return nil, fmt.Errorf("failed to encode new value: %w", err)
	}

	return &models.AuditLogModel{
		ID:         l.ID(),
		Action:     l.Action().String(),
		EntityType: l.EntityType(),
		EntityID:   l.EntityID(),
		Details:    l.Details(),
		OldValue:   oldValue,
		NewValue:   newValue,
		ActorID:    l.ActorID(),
		CreatedAt:  l.CreatedAt().UnixMilli(),
	}, nil
}

func (m *AuditLogMapperImpl) ToDomain(model *models.AuditLogModel) (*audit.AuditLog, error) {
	oldValue, err := snapshotFromJSON(model.OldValue)
	if err != nil {
		return nil, fmt.Errorf("failed to decode old value: %w", err)
	}
	newValue, err := snapshotFromJSON(model.NewValue)
	if err != nil {
		return nil, fmt.Errorf("failed to decode new value: %w", err)
	}

	return audit.ReconstructAuditLog(
		model.ID,
		audit.Action(model.Action),
		model.EntityType,
		model.EntityID,
		model.Details,
		oldValue,
		newValue,
		model.ActorID,
		fromMilli(model.CreatedAt),
	), nil
}

func snapshotToJSON(s audit.Snapshot) (datatypes.JSON, error) {
	if len(s) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func snapshotFromJSON(raw datatypes.JSON) (audit.Snapshot, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var s audit.Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return s, nil
}
