package usecase

import (
	"context"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
)

// SignupInput carries the registration form fields.
type SignupInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	InviteCode      string
}

// ProfileUpdateInput carries the editable profile fields. Password is
// only changed when non-empty.
type ProfileUpdateInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// AdminStats summarizes the store for the admin dashboard.
type AdminStats struct {
	TotalUsers         int
	PendingRecharges   int
	PendingWithdrawals int
	PendingVIPs        int
	TotalBalance       int64
}

// AccountUseCase covers registration, login and account maintenance.
type AccountUseCase interface {
	Signup(ctx context.Context, input SignupInput) (*entity.User, error)
	Login(ctx context.Context, email, password, inviteCode string) (*entity.User, error)
	AdminLogin(ctx context.Context, email, password string) (*entity.Admin, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, input ProfileUpdateInput) (*entity.User, error)
	DeleteAccount(ctx context.Context, userID string) error
	ListUsers(ctx context.Context) ([]*entity.User, error)
	Stats(ctx context.Context) (*AdminStats, error)
}
