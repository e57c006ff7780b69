package services

import (
	"context"
	"testing"
	"time"

	"wwcrm-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Invoice{}))
	return db
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) *models.Customer {
	t.Helper()

	customer, err := NewCustomerService(db).Create(context.Background(), CreateCustomerInput{
		Name:         name,
		Phone:        "+15555550100",
		Email:        name + "@example.com",
		BuildingType: "residential",
		ServiceUnits: 12,
	})
	require.NoError(t, err)
	return customer
}

func reloadCustomer(t *testing.T, db *gorm.DB, id uint) *models.Customer {
	t.Helper()

	var customer models.Customer
	require.NoError(t, db.First(&customer, id).Error)
	return &customer
}
