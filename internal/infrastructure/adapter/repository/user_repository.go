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
	"gorm.io/gorm/clause"
)

// UserRepository implements persistence.UserRepository using GORM.
// Reads hydrate the full aggregate; Save writes it back wholesale.
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance. The db may
// be a plain connection or a transaction handle from the unit of work.
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"userId": userID,
		"error":  err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateEmail
	}
	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// GetByID retrieves a user aggregate by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, "getting user by id", id, "id = ?", id)
}

// GetByEmail retrieves a user aggregate by unique email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, "getting user by email", email, "email = ?", email)
}

// GetByInvitationCode retrieves the user owning an invitation code
func (r *UserRepository) GetByInvitationCode(ctx context.Context, code string) (*entity.User, error) {
	return r.getOne(ctx, "getting user by invitation code", code, "invitation_code = ?", code)
}

func (r *UserRepository) getOne(ctx context.Context, operation, key, query string, arg any) (*entity.User, error) {
	var userModel model.User
	result := r.withAggregate(ctx).Where(query, arg).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError(operation, result.Error, key)
	}
	return modelToEntity(&userModel), nil
}

// Create persists a new user aggregate
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := entityToModel(user)
	result := r.db.WithContext(ctx).Create(userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	r.logger.Info("User created", map[string]any{
		"userId": user.ID,
		"email":  user.Email,
	})
	return nil
}

// Save persists all mutations to an existing aggregate. The user row
// and owned transaction/request rows are upserted; referral rows are
// replaced wholesale because they carry no stable natural key.
func (r *UserRepository) Save(ctx context.Context, user *entity.User) error {
	userModel := entityToModel(user)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.User{}).
			Where("id = ?", userModel.ID).
			Updates(map[string]any{
				"name":               userModel.Name,
				"email":              userModel.Email,
				"phone":              userModel.Phone,
				"password":           userModel.Password,
				"balance":            userModel.Balance,
				"daily_profit":       userModel.DailyProfit,
				"total_earnings":     userModel.TotalEarnings,
				"referral_earnings":  userModel.ReferralEarnings,
				"vip_level":          userModel.VIPLevel,
				"vip_approved_date":  userModel.VIPApprovedDate,
				"last_profit_date":   userModel.LastProfitDate,
				"vip_days_completed": userModel.VIPDaysCompleted,
				"invited_by":         userModel.InvitedBy,
				"has_used_invite":    userModel.HasUsedInvite,
				"updated_at":         userModel.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.ErrUserNotFound
		}

		if len(userModel.Transactions) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
				Create(&userModel.Transactions).Error; err != nil {
				return err
			}
		}
		if len(userModel.Requests) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
				Create(&userModel.Requests).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", userModel.ID).
			Delete(&model.Referral{}).Error; err != nil {
			return err
		}
		if len(userModel.Referrals) > 0 {
			if err := tx.Create(&userModel.Referrals).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return err
		}
		return r.handleDatabaseError("saving user", err, user.ID)
	}

	r.logger.Debug("User saved", map[string]any{
		"userId":  user.ID,
		"balance": user.Balance(),
	})
	return nil
}

// Delete removes the user and all owned rows as one atomic unit
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.Transaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Request{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Referral{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return err
		}
		return r.handleDatabaseError("deleting user", err, id)
	}
	return nil
}

// List returns all user aggregates, ordered by creation time
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.User
	result := r.withAggregate(ctx).Order("created_at ASC").Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing users", result.Error, "")
	}
	return modelsToEntities(userModels), nil
}

// ListActiveVIP returns users currently inside a VIP cycle
func (r *UserRepository) ListActiveVIP(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.User
	result := r.withAggregate(ctx).
		Where("vip_level > 0 AND vip_approved_date IS NOT NULL").
		Order("created_at ASC").
		Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing active VIP users", result.Error, "")
	}
	return modelsToEntities(userModels), nil
}

// InvitationCodeExists reports whether a code is already issued
func (r *UserRepository) InvitationCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("invitation_code = ?", code).
		Count(&count)
	if result.Error != nil {
		return false, r.handleDatabaseError("checking invitation code", result.Error, code)
	}
	return count > 0, nil
}

func (r *UserRepository) withAggregate(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Transactions", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Preload("Requests", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Preload("Referrals", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") })
}

func modelsToEntities(userModels []model.User) []*entity.User {
	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, modelToEntity(&userModels[i]))
	}
	return users
}

// modelToEntity hydrates the domain aggregate from its rows
func modelToEntity(m *model.User) *entity.User {
	user := &entity.User{
		ID:               m.ID,
		Name:             m.Name,
		Email:            m.Email,
		Phone:            m.Phone,
		Password:         m.Password,
		DailyProfit:      m.DailyProfit,
		TotalEarnings:    m.TotalEarnings,
		ReferralEarnings: m.ReferralEarnings,
		VIPLevel:         m.VIPLevel,
		VIPApprovedDate:  m.VIPApprovedDate,
		LastProfitDate:   m.LastProfitDate,
		VIPDaysCompleted: m.VIPDaysCompleted,
		InvitationCode:   m.InvitationCode,
		InvitedBy:        m.InvitedBy,
		HasUsedInvite:    m.HasUsedInvite,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	user.SetBalance(m.Balance)

	for _, t := range m.Transactions {
		user.Transactions = append(user.Transactions, entity.Transaction{
			ID:        t.ID,
			UserID:    t.UserID,
			RequestID: t.RequestID,
			Type:      t.Type,
			Amount:    t.Amount,
			Date:      t.Date,
			Status:    entity.TransactionStatus(t.Status),
		})
	}
	for _, q := range m.Requests {
		user.Requests = append(user.Requests, entity.Request{
			ID:            q.ID,
			UserID:        q.UserID,
			Kind:          entity.RequestKind(q.Kind),
			Amount:        q.Amount,
			Date:          q.Date,
			Status:        entity.RequestStatus(q.Status),
			ProofRef:      q.ProofRef,
			Phone:         q.Phone,
			Network:       q.Network,
			Level:         q.Level,
			DaysRemaining: q.DaysRemaining,
		})
	}
	for _, ref := range m.Referrals {
		user.Referrals = append(user.Referrals, entity.Referral{
			Email:         ref.Email,
			Date:          ref.Date,
			Bonus:         ref.Bonus,
			LastBonusDate: ref.LastBonusDate,
		})
	}
	return user
}

// entityToModel flattens the aggregate into its rows
func entityToModel(user *entity.User) *model.User {
	m := &model.User{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Phone:            user.Phone,
		Password:         user.Password,
		Balance:          user.Balance(),
		DailyProfit:      user.DailyProfit,
		TotalEarnings:    user.TotalEarnings,
		ReferralEarnings: user.ReferralEarnings,
		VIPLevel:         user.VIPLevel,
		VIPApprovedDate:  user.VIPApprovedDate,
		LastProfitDate:   user.LastProfitDate,
		VIPDaysCompleted: user.VIPDaysCompleted,
		InvitationCode:   user.InvitationCode,
		InvitedBy:        user.InvitedBy,
		HasUsedInvite:    user.HasUsedInvite,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
	for _, t := range user.Transactions {
		m.Transactions = append(m.Transactions, model.Transaction{
			ID:        t.ID,
			UserID:    t.UserID,
			RequestID: t.RequestID,
			Type:      t.Type,
			Amount:    t.Amount,
			Date:      t.Date,
			Status:    string(t.Status),
		})
	}
	for _, q := range user.Requests {
		m.Requests = append(m.Requests, model.Request{
			ID:            q.ID,
			UserID:        q.UserID,
			Kind:          string(q.Kind),
			Amount:        q.Amount,
			Date:          q.Date,
			Status:        string(q.Status),
			ProofRef:      q.ProofRef,
			Phone:         q.Phone,
			Network:       q.Network,
			Level:         q.Level,
			DaysRemaining: q.DaysRemaining,
		})
	}
	for _, ref := range user.Referrals {
		m.Referrals = append(m.Referrals, model.Referral{
			UserID:        user.ID,
			Email:         ref.Email,
			Date:          ref.Date,
			Bonus:         ref.Bonus,
			LastBonusDate: ref.LastBonusDate,
		})
	}
	return m
}
