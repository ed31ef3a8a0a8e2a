package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/aabinvest/vip-ledger/internal/domain/port/core"
	"github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// SchemaVersion identifies the current data shape. Bump it whenever a
// migration step below changes.
const SchemaVersion = "2.0"

// Default administrator seeded into an empty database.
const (
	DefaultAdminEmail    = "admin@aab.com"
	DefaultAdminPassword = "admin123"
	DefaultAdminName     = "Admin"
)

// Manager applies schema migrations and seeds required records
type Manager struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewManager creates a migration manager
func NewManager(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *Manager {
	return &Manager{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Migrate brings the schema up to date, stamps the schema version and
// seeds the default admin when no administrator exists yet.
func (m *Manager) Migrate(ctx context.Context) error {
	db := m.db.WithContext(ctx)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Transaction{},
		&model.Request{},
		&model.Referral{},
		&model.Admin{},
		&model.SchemaVersion{},
	); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	applied, err := m.stampVersion(db)
	if err != nil {
		return err
	}
	if applied {
		m.logger.Info("Schema version applied", map[string]any{
			"version": SchemaVersion,
		})
	}

	if err := m.seedDefaultAdmin(db); err != nil {
		return err
	}

	m.logger.Info("Database migration completed", map[string]any{
		"version": SchemaVersion,
	})
	return nil
}

// stampVersion records the schema version once; reruns are no-ops.
func (m *Manager) stampVersion(db *gorm.DB) (bool, error) {
	var existing model.SchemaVersion
	err := db.Where("version = ?", SchemaVersion).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to read schema version: %w", err)
	}

	record := model.SchemaVersion{
		Version:   SchemaVersion,
		AppliedAt: m.timeProvider.Now(),
	}
	if err := db.Create(&record).Error; err != nil {
		return false, fmt.Errorf("failed to stamp schema version: %w", err)
	}
	return true, nil
}

// seedDefaultAdmin creates the bootstrap administrator in an otherwise
// adminless database so the dashboard is reachable on first run.
func (m *Manager) seedDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Admin{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	admin := model.Admin{
		Email:     DefaultAdminEmail,
		Password:  DefaultAdminPassword,
		Name:      DefaultAdminName,
		CreatedAt: m.timeProvider.Now(),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	m.logger.Info("Default admin seeded", map[string]any{
		"email": DefaultAdminEmail,
	})
	return nil
}
