package store

import (
	"context"
	"testing"

	"garage-desk/internal/database"
	"garage-desk/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// a pooled second connection would see a different in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedClient(t *testing.T, db *gorm.DB, name, phone string) *models.Client {
	t.Helper()
	client, created, err := NewClientStore(db).Create(context.Background(), ClientInput{
		Name:  name,
		Phone: phone,
	})
	require.NoError(t, err)
	require.True(t, created)
	return client
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validVehicleInput(clientID uint) VehicleInput {
	return VehicleInput{
		ClientID:      clientID,
		VehicleNumber: "ABC1234567",
		Date:          "2024-03-10",
	}
}
