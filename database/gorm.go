package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/qslrm-api/config"
	"github.com/qslrm-api/models"
)

// Connect opens the PostgreSQL connection and migrates the schema. The
// returned handle is passed explicitly to repositories; there is no
// package-level connection.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for all record types.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Researcher{},
		&models.SimulationProject{},
		&models.ProjectResearcher{},
		&models.QuantumSimulation{},
		&models.Parameter{},
		&models.SimulationResult{},
		&models.ReproducibilityMetadata{},
		&models.AccessLog{},
	)
}
