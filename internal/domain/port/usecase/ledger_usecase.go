package usecase

import (
	"context"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
)

// PendingRequest pairs a request with its owner for admin listings.
type PendingRequest struct {
	UserID    string
	UserName  string
	UserEmail string
	Request   entity.Request
}

// LedgerUseCase is the request engine: submissions append pending
// requests with mirrored ledger entries; admin decisions settle them
// and mutate balances.
type LedgerUseCase interface {
	SubmitRecharge(ctx context.Context, userID string, amount int64, proofRef string) (*entity.Request, error)
	SubmitWithdrawal(ctx context.Context, userID string, amount int64, phone, network string) (*entity.Request, error)
	SubmitVIPPurchase(ctx context.Context, userID string, level int) (*entity.Request, error)

	ApproveRecharge(ctx context.Context, userID, requestID string) error
	RejectRecharge(ctx context.Context, userID, requestID string) error
	ApproveWithdrawal(ctx context.Context, userID, requestID string) error
	RejectWithdrawal(ctx context.Context, userID, requestID string) error
	ApproveVIP(ctx context.Context, userID, requestID string) error
	RejectVIP(ctx context.Context, userID, requestID string) error

	PendingRequests(ctx context.Context, kind entity.RequestKind) ([]PendingRequest, error)
}
