package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
	coreport "github.com/aabinvest/vip-ledger/internal/domain/port/core"
	"github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AdminRepository implements persistence.AdminRepository using GORM
type AdminRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAdminRepository creates a new AdminRepository instance
func NewAdminRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AdminRepository {
	return &AdminRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminModel model.Admin
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&adminModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrAdminNotFound
		}
		r.logger.Error("Database error when getting admin", map[string]any{
			"email": email,
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return &entity.Admin{
		Email:    adminModel.Email,
		Password: adminModel.Password,
		Name:     adminModel.Name,
	}, nil
}

// Create persists a new admin record
func (r *AdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminModel := model.Admin{
		Email:     admin.Email,
		Password:  admin.Password,
		Name:      admin.Name,
		CreatedAt: r.timeProvider.Now(),
	}
	result := r.db.WithContext(ctx).Create(&adminModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating admin", map[string]any{
			"email": admin.Email,
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Info("Admin created", map[string]any{"email": admin.Email})
	return nil
}

// Count returns the number of admin records
func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Admin{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count, nil
}
