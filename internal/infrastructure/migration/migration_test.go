package migration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gearguard/gearguard/internal/infrastructure/persistence/models"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func assertSchema(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m), "missing table for %T", m)
	}
	assert.True(t, db.Migrator().HasIndex(&models.AuditLogModel{}, "idx_audit_entity"))
}

func TestGooseStrategy_UpStatusDown(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()
	s := NewGooseStrategy()

	require.NoError(t, NewManagerWithStrategy(s).Migrate(ctx, db))
	assertSchema(t, db)

	version, err := s.GetVersion(ctx, db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)

	statuses, err := s.Status(ctx, db)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].Applied)

	// Re-running is a no-op.
	require.NoError(t, s.Migrate(ctx, db))

	require.NoError(t, s.MigrateDown(ctx, db, 1))
	assert.False(t, db.Migrator().HasTable(&models.MaintenanceRequestModel{}))
}

func TestAutoMigrateStrategy(t *testing.T) {
	db := openSQLite(t)
	m := NewManager(StrategyAutoMigrate)
	assert.Equal(t, "gorm_auto_migrate", m.GetStrategy().GetName())

	require.NoError(t, m.Migrate(context.Background(), db))
	assertSchema(t, db)
}

func TestNewManager_DefaultsToGoose(t *testing.T) {
	assert.Equal(t, "goose", NewManager("").GetStrategy().GetName())
}
