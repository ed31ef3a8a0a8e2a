package database

import (
	"fmt"

	coreport "github.com/aabinvest/vip-ledger/internal/domain/port/core"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewConnection opens a PostgreSQL connection with the configured pool
// settings and verifies it with a ping.
func NewConnection(config Config, logger coreport.Logger) (*gorm.DB, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established", map[string]any{
		"host":   config.Host,
		"port":   config.Port,
		"dbname": config.DBName,
	})
	return db, nil
}

// CloseConnection closes the underlying connection pool
func CloseConnection(db *gorm.DB, logger coreport.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	logger.Info("Database connection closed", nil)
	return nil
}
