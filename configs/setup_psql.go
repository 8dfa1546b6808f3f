package configs

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectPSQLDatabase opens the Postgres backend used when STORE_DRIVER=postgres.
func ConnectPSQLDatabase(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is required for the postgres store")
	}

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	LogWithContext("database", "postgres-connect").
		WithField("database", database.Name()).
		Info("Connected to PostgreSQL successfully")
	return database, nil
}
