package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&widget{}))
	return db
}

func count(t *testing.T, db *gorm.DB) int64 {
	var n int64
	require.NoError(t, db.Model(&widget{}).Count(&n).Error)
	return n
}

func TestRunInTransaction_CommitsOnSuccess(t *testing.T) {
	db := setupDB(t)
	tm := NewTransactionManager(db)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		return GetTxFromContext(ctx, db).Create(&widget{Name: "pump"}).Error
	})

	require.NoError(t, err)
	assert.EqualValues(t, 1, count(t, db))
}

func TestRunInTransaction_RollsBackOnError(t *testing.T) {
	db := setupDB(t)
	tm := NewTransactionManager(db)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		if err := GetTxFromContext(ctx, db).Create(&widget{Name: "pump"}).Error; err != nil {
			return err
		}
		return errors.New("equipment cascade failed")
	})

	require.Error(t, err)
	assert.EqualValues(t, 0, count(t, db))
}

func TestRunInTransaction_NestedJoinsOuter(t *testing.T) {
	db := setupDB(t)
	tm := NewTransactionManager(db)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		require.NoError(t, tm.RunInTransaction(ctx, func(inner context.Context) error {
			return GetTxFromContext(inner, db).Create(&widget{Name: "valve"}).Error
		}))
		return errors.New("abort outer")
	})

	require.Error(t, err)
	assert.EqualValues(t, 0, count(t, db))
}

func TestPaginate_ClampsValues(t *testing.T) {
	db := setupDB(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, db.Create(&widget{Name: "w"}).Error)
	}

	var page []widget
	require.NoError(t, db.Scopes(Paginate(2, 2)).Order("id").Find(&page).Error)
	require.Len(t, page, 2)
	assert.EqualValues(t, 3, page[0].ID)

	var all []widget
	require.NoError(t, db.Scopes(Paginate(0, 0)).Find(&all).Error)
	assert.Len(t, all, 5)
}
