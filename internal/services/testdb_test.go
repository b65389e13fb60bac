package services

import (
	"fmt"
	"strings"
	"testing"

	"contentflow_go_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory SQLite database. The shared cache
// keeps the database alive across gorm's pooled connections; naming it after
// the test isolates tests from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Content{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, usageLimit, monthlyUsage int) *models.User {
	t.Helper()
	user := models.User{
		Username:     fmt.Sprintf("user_%d_%d", usageLimit, monthlyUsage),
		Email:        fmt.Sprintf("user_%d_%d@example.com", usageLimit, monthlyUsage),
		PasswordHash: "x",
		UsageLimit:   usageLimit,
		MonthlyUsage: monthlyUsage,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func monthlyUsageOf(t *testing.T, db *gorm.DB, user *models.User) int {
	t.Helper()
	var fresh models.User
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	return fresh.MonthlyUsage
}
