package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQLite opens a gorm connection with WAL journaling and foreign keys,
// then migrates models.
func OpenSQLite(path, environment string, log *zap.Logger, models ...any) (*gorm.DB, error) {
	logLevel := logger.Info
	if environment == "production" {
		logLevel = logger.Warn
	}

	dsn := path + "?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}
	log.Info("[database] sqlite ready", zap.String("path", path), zap.Int("models", len(models)))
	return db, nil
}
