package services

import (
	"testing"

	"pquiz/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Quiz{},
		&models.Question{},
		&models.Attempt{},
		&models.Category{},
		&models.Level{},
		&models.Topic{},
	))

	return db
}

func strPtr(s string) *string {
	return &s
}
