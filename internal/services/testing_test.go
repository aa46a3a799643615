package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/HardPrice/test-task-secunda/internal/database"
)

// newTestDB opens an isolated in-memory sqlite database migrated to
// the current schema.
func newTestDB(t *testing.T) database.Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	adapter := database.NewGormAdapter(db)
	require.NoError(t, adapter.AutoMigrate())

	t.Cleanup(func() {
		_ = adapter.Close()
	})

	return adapter
}
