package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
	coreport "github.com/aabinvest/vip-ledger/internal/domain/port/core"
	"github.com/aabinvest/vip-ledger/internal/domain/port/persistence"
	"github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

type contextKey string

const txKey = contextKey("tx")

// UnitOfWork implements persistence.UnitOfWork on GORM transactions.
// The live transaction handle travels inside the context so use cases
// stay free of database types.
type UnitOfWork struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUnitOfWork creates a UnitOfWork over the given connection
func NewUnitOfWork(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UnitOfWork {
	return &UnitOfWork{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Begin starts a transaction and stores it in the returned context.
// Serializable isolation keeps the two-sided referral mutation exact
// under concurrent approvals.
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{
		Isolation: sql.LevelSerializable,
	})
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{
			"error": tx.Error.Error(),
		})
		return ctx, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, tx.Error.Error())
	}
	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the transaction stored in the context
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, err := txFromContext(ctx)
	if err != nil {
		return err
	}
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// Rollback rolls back the transaction stored in the context
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, err := txFromContext(ctx)
	if err != nil {
		return err
	}
	if err := tx.Rollback().Error; err != nil {
		u.logger.Error("Failed to roll back transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// GetUserRepository returns a user repository bound to the transaction
// in the context, or to the base connection when none is present.
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return repository.NewUserRepository(tx, u.timeProvider, u.logger)
	}
	return repository.NewUserRepository(u.db, u.timeProvider, u.logger)
}

func txFromContext(ctx context.Context) (*gorm.DB, error) {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok {
		return nil, errors.New("no transaction in context")
	}
	return tx, nil
}
