package ledger

import (
	"context"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
	"github.com/aabinvest/vip-ledger/internal/domain/port/usecase"
)

// PendingRequests lists every undecided request of one kind across all
// users, paired with the owner for the admin dashboard tables.
func (s *Service) PendingRequests(ctx context.Context, kind entity.RequestKind) ([]usecase.PendingRequest, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []usecase.PendingRequest
	for _, u := range users {
		for _, req := range u.PendingRequests(kind) {
			out = append(out, usecase.PendingRequest{
				UserID:    u.ID,
				UserName:  u.Name,
				UserEmail: u.Email,
				Request:   req,
			})
		}
	}
	return out, nil
}
