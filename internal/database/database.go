package database

import (
	"fmt"
	"time"

	"garage-desk/internal/config"
	"garage-desk/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the configured database, runs migrations and returns
// the handle. Postgres startup ordering (e.g. under docker compose) is
// absorbed by a bounded retry loop.
func Open(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DBDSN)
	case "sqlite":
		dial = sqlite.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	const maxAttempts = 10
	var db *gorm.DB
	var err error
	for i := 1; i <= maxAttempts; i++ {
		db, err = gorm.Open(dial, &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err == nil {
			break
		}
		log.Warnf("failed to connect to DB (attempt %d/%d): %v", i, maxAttempts, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to db after %d attempts: %w", maxAttempts, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates/updates the schema and normalizes legacy data.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Client{},
		&models.Vehicle{},
		&models.Document{},
		&models.Notification{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := migrateWorkTypes(db); err != nil {
		return fmt.Errorf("migrate work_type: %w", err)
	}
	return nil
}
