package database

import (
	"fmt"
	"time"

	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
)

// Config holds the PostgreSQL connection settings
type Config struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
}

// DefaultConfig returns a config suitable for local development
func DefaultConfig() Config {
	return Config{
		Host:            "localhost",
		Port:            5432,
		User:            "postgres",
		Password:        "postgres",
		DBName:          "vip_ledger",
		SSLMode:         "disable",
		MaxIdleConns:    10,
		MaxOpenConns:    50,
		ConnMaxLifetime: time.Hour,
	}
}

// DSN builds the PostgreSQL connection string
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Validate checks that required fields are present
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: database host is required", errs.ErrValidation)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: database port must be between 1 and 65535", errs.ErrValidation)
	}
	if c.User == "" {
		return fmt.Errorf("%w: database user is required", errs.ErrValidation)
	}
	if c.DBName == "" {
		return fmt.Errorf("%w: database name is required", errs.ErrValidation)
	}
	return nil
}
