package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/gearguard/gearguard/internal/infrastructure/persistence/models"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

// GormAutoMigrateStrategy derives the schema from the persistence models.
// Used for development databases and throwaway sqlite files.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: logger.WithComponent("migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

func (s *GormAutoMigrateStrategy) Migrate(ctx context.Context, db *gorm.DB) error {
	all := models.All()
	s.logger.Infow("running gorm auto migrate", "models_count", len(all))
	if err := db.WithContext(ctx).AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}
