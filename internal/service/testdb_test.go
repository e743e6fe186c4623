package service

import (
	"testing"
	"time"

	"github.com/budgetbook/internal/models"
	"github.com/budgetbook/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive for the
	// whole test.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Account{},
		&models.Month{},
		&models.Outgoing{},
		&models.Transfer{},
	))

	return db
}

func newTestAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(
		repository.NewUserRepository(db),
		repository.NewSessionRepository(db),
		30*24*time.Hour,
	)
}

// createTestUser signs up a user directly through the auth service and
// returns it.
func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	svc := newTestAuthService(db)
	resp, _, err := svc.Signup(&SignupRequest{
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("id = ?", resp.ID).First(&user).Error)
	return &user
}

// backdateMonth pushes a month's creation time into the past so
// creation-order queries are deterministic in fast tests.
func backdateMonth(t *testing.T, db *gorm.DB, monthID string, age time.Duration) {
	t.Helper()

	err := db.Model(&models.Month{}).
		Where("id = ?", monthID).
		Update("created_at", time.Now().Add(-age)).Error
	require.NoError(t, err)
}
