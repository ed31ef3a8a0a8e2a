package entity

import (
	"time"

	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
	coreport "github.com/aabinvest/vip-ledger/internal/domain/port/core"
)

// RequestKind discriminates the three request variants
type RequestKind string

const (
	KindRecharge   RequestKind = "recharge"
	KindWithdrawal RequestKind = "withdrawal"
	KindVIP        RequestKind = "vip"
)

// RequestStatus defines the admin-decision states of a request
type RequestStatus string

const (
	ReqPending  RequestStatus = "pending"
	ReqApproved RequestStatus = "approved"
	ReqRejected RequestStatus = "rejected"
)

// Request is a pending user action awaiting an admin decision. Every
// request carries its own unique ID assigned at creation; all
// approval and rejection lookups go through that ID.
type Request struct {
	ID     string
	UserID string
	Kind   RequestKind
	Amount int64
	Date   time.Time
	Status RequestStatus

	// Recharge only
	ProofRef string

	// Withdrawal only
	Phone   string
	Network string

	// VIP only
	Level         int
	DaysRemaining int
}

// NewRechargeRequest creates a pending recharge request.
func NewRechargeRequest(id, userID string, amount int64, proofRef string, timeProvider coreport.TimeProvider) (*Request, error) {
	req, err := newRequest(id, userID, KindRecharge, amount, timeProvider)
	if err != nil {
		return nil, err
	}
	req.ProofRef = proofRef
	return req, nil
}

// NewWithdrawalRequest creates a pending withdrawal request.
func NewWithdrawalRequest(id, userID string, amount int64, phone, network string, timeProvider coreport.TimeProvider) (*Request, error) {
	req, err := newRequest(id, userID, KindWithdrawal, amount, timeProvider)
	if err != nil {
		return nil, err
	}
	req.Phone = phone
	req.Network = network
	return req, nil
}

// NewVIPRequest creates a pending VIP purchase request for a tier.
func NewVIPRequest(id, userID string, tier Tier, timeProvider coreport.TimeProvider) (*Request, error) {
	req, err := newRequest(id, userID, KindVIP, tier.Price, timeProvider)
	if err != nil {
		return nil, err
	}
	req.Level = tier.Level
	req.DaysRemaining = CycleDays
	return req, nil
}

func newRequest(id, userID string, kind RequestKind, amount int64, timeProvider coreport.TimeProvider) (*Request, error) {
	if id == "" {
		return nil, errs.ErrInvalidRequestID
	}
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	return &Request{
		ID:     id,
		UserID: userID,
		Kind:   kind,
		Amount: amount,
		Date:   timeProvider.Now(),
		Status: ReqPending,
	}, nil
}

// IsPending reports whether the request still awaits a decision.
func (r *Request) IsPending() bool {
	return r.Status == ReqPending
}

// Approve records an admin approval. Deciding a request twice is an error.
func (r *Request) Approve() error {
	return r.decide(ReqApproved)
}

// Reject records an admin rejection.
func (r *Request) Reject() error {
	return r.decide(ReqRejected)
}

func (r *Request) decide(to RequestStatus) error {
	if !r.IsPending() {
		return errs.ErrRequestDecided
	}
	r.Status = to
	return nil
}
