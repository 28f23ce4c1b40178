package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var PGDB *gorm.DB

func ConnectPSQLDatabase() error {
	if PGDB != nil {
		return nil // Already connected
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		EnvDBHost(),
		EnvDBUser(),
		EnvDBPassword(),
		EnvDBName(),
		EnvDBPort(),
	)
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PGDB = database
	LogWithContext("database", "postgres-connect").Info("Connected to PostgreSQL successfully")
	return nil
}
