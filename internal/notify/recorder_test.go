package notify

import (
	"context"
	"testing"

	"garage-desk/internal/database"
	"garage-desk/internal/models"
	"garage-desk/internal/store"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
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

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func TestRecorderWritesNotification(t *testing.T) {
	db := newTestDB(t)
	notifications := store.NewNotificationStore(db)
	log, hook := logtest.NewNullLogger()
	recorder := NewRecorder(notifications, log)

	recorder.VehicleCreated(context.Background(), &store.VehicleRow{
		ID:            7,
		VehicleNumber: "ABC1234567",
		ClientName:    "Ravi",
	})

	list, err := notifications.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, TypeVehicleCreated, list[0].Type)
	assert.Equal(t, "New vehicle ABC1234567 registered for Ravi", list[0].Message)
	require.NotNil(t, list[0].VehicleID)
	assert.Equal(t, uint(7), *list[0].VehicleID)
	assert.False(t, list[0].IsRead)
	assert.Empty(t, hook.Entries)

	recorder.VehicleUpdated(context.Background(), &store.VehicleRow{
		ID:            7,
		VehicleNumber: "ABC1234567",
	})
	list, err = notifications.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, TypeVehicleUpdated, list[0].Type)
	assert.Equal(t, "Vehicle ABC1234567 was updated", list[0].Message)
}

func TestRecorderSwallowsWriteFailure(t *testing.T) {
	db := newTestDB(t)
	notifications := store.NewNotificationStore(db)
	log, hook := logtest.NewNullLogger()
	recorder := NewRecorder(notifications, log)

	// force the insert to fail
	require.NoError(t, db.Migrator().DropTable(&models.Notification{}))

	recorder.VehicleCreated(context.Background(), &store.VehicleRow{
		ID:            1,
		VehicleNumber: "ABC1234567",
		ClientName:    "Ravi",
	})

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "failed to record notification", hook.LastEntry().Message)
}
