package account

import (
	"context"
	"fmt"
	"math/rand"

	coreport "github.com/aabinvest/vip-ledger/internal/domain/port/core"
	"github.com/aabinvest/vip-ledger/internal/domain/port/persistence"
)

// DefaultInviteCode is the placeholder code shown on the signup form.
// It never resolves to an inviter.
const DefaultInviteCode = "2233"

// LoginInviteBonus is the flat credit an inviter receives the first
// time a referred user logs in with their code.
const LoginInviteBonus int64 = 2000

// invitationCodeAttempts bounds rejection sampling so a near-full code
// space cannot spin forever.
const invitationCodeAttempts = 100

// Service handles registration, login and account maintenance.
type Service struct {
	userRepo     persistence.UserRepository
	adminRepo    persistence.AdminRepository
	idGen        coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the account service with its dependencies.
func NewService(
	userRepo persistence.UserRepository,
	adminRepo persistence.AdminRepository,
	idGen coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		adminRepo:    adminRepo,
		idGen:        idGen,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// generateInvitationCode rejection-samples random 4-digit codes until
// one is unique against the current store snapshot. Uniqueness holds
// at issuance time under the single-writer assumption.
func (s *Service) generateInvitationCode(ctx context.Context) (string, error) {
	for i := 0; i < invitationCodeAttempts; i++ {
		code := fmt.Sprintf("%04d", 1000+rand.Intn(9000))
		exists, err := s.userRepo.InvitationCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique invitation code after %d attempts", invitationCodeAttempts)
}
