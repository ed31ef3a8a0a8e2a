package account

import (
	"context"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
	"github.com/aabinvest/vip-ledger/internal/domain/port/usecase"
)

// GetUser returns the full user aggregate.
func (s *Service) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// ListUsers returns all registered users for the admin dashboard.
func (s *Service) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateProfile edits name/email/phone and, when non-empty, the
// password. Email changes are checked against existing registrations.
func (s *Service) UpdateProfile(ctx context.Context, userID string, input usecase.ProfileUpdateInput) (*entity.User, error) {
	if input.Password != "" && input.Password != input.ConfirmPassword {
		return nil, errs.ErrPasswordMismatch
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != "" && input.Email != user.Email {
		if _, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil {
			return nil, errs.ErrDuplicateEmail
		} else if !errs.IsNotFoundError(err) {
			return nil, err
		}
		user.Email = input.Email
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Password != "" {
		user.Password = input.Password
	}
	user.UpdatedAt = s.timeProvider.Now()

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Profile updated", map[string]any{"userId": user.ID})
	return user, nil
}

// Stats aggregates the store for the admin dashboard header.
func (s *Service) Stats(ctx context.Context) (*usecase.AdminStats, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &usecase.AdminStats{TotalUsers: len(users)}
	for _, u := range users {
		stats.TotalBalance += u.Balance()
		stats.PendingRecharges += len(u.PendingRequests(entity.KindRecharge))
		stats.PendingWithdrawals += len(u.PendingRequests(entity.KindWithdrawal))
		stats.PendingVIPs += len(u.PendingRequests(entity.KindVIP))
	}
	return stats, nil
}
