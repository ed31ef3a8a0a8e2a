package account

import (
	"context"
)

// DeleteAccount removes the user record and all owned requests,
// transactions and referral rows as one unit. Referral records naming
// this user's email on other users remain as dangling weak references.
func (s *Service) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("User deleted", map[string]any{"userId": userID})
	return nil
}
