package dto

import (
	"time"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
)

// UserResponse is the dashboard view of one user aggregate. The
// password never leaves the server.
type UserResponse struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	Email            string                `json:"email"`
	Phone            string                `json:"phone"`
	Balance          int64                 `json:"balance"`
	DailyProfit      int64                 `json:"dailyProfit"`
	TotalEarnings    int64                 `json:"totalEarnings"`
	ReferralEarnings int64                 `json:"referralEarnings"`
	VIPLevel         int                   `json:"vipLevel"`
	VIPApprovedDate  *time.Time            `json:"vipApprovedDate,omitempty"`
	LastProfitDate   *time.Time            `json:"lastProfitDate,omitempty"`
	VIPDaysCompleted int                   `json:"vipDaysCompleted"`
	InvitationCode   string                `json:"invitationCode"`
	InvitedBy        string                `json:"invitedBy,omitempty"`
	Referrals        []ReferralResponse    `json:"referrals"`
	Transactions     []TransactionResponse `json:"transactions"`
	Requests         []RequestResponse     `json:"requests"`
	CreatedAt        time.Time             `json:"createdAt"`
}

// ReferralResponse is one referred signup on the inviter's side
type ReferralResponse struct {
	Email         string     `json:"email"`
	Date          time.Time  `json:"date"`
	Bonus         int64      `json:"bonus"`
	LastBonusDate *time.Time `json:"lastBonusDate,omitempty"`
}

// TransactionResponse is one ledger entry
type TransactionResponse struct {
	ID        string    `json:"id"`
	RequestID string    `json:"requestId,omitempty"`
	Type      string    `json:"type"`
	Amount    int64     `json:"amount"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
}

// RequestResponse is one pending or decided request
type RequestResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Kind          string    `json:"kind"`
	Amount        int64     `json:"amount"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
	ProofRef      string    `json:"proofRef,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Network       string    `json:"network,omitempty"`
	Level         int       `json:"level,omitempty"`
	DaysRemaining int       `json:"daysRemaining,omitempty"`
}

// UpdateProfileRequest represents the editable profile fields
type UpdateProfileRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// FromUser maps a user aggregate to its API representation
func FromUser(user *entity.User) UserResponse {
	resp := UserResponse{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Phone:            user.Phone,
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
		Referrals:        []ReferralResponse{},
		Transactions:     []TransactionResponse{},
		Requests:         []RequestResponse{},
		CreatedAt:        user.CreatedAt,
	}
	for _, ref := range user.Referrals {
		resp.Referrals = append(resp.Referrals, ReferralResponse{
			Email:         ref.Email,
			Date:          ref.Date,
			Bonus:         ref.Bonus,
			LastBonusDate: ref.LastBonusDate,
		})
	}
	for _, txn := range user.Transactions {
		resp.Transactions = append(resp.Transactions, TransactionResponse{
			ID:        txn.ID,
			RequestID: txn.RequestID,
			Type:      txn.Type,
			Amount:    txn.Amount,
			Date:      txn.Date,
			Status:    string(txn.Status),
		})
	}
	for _, req := range user.Requests {
		resp.Requests = append(resp.Requests, FromRequest(&req))
	}
	return resp
}

// FromRequest maps a request to its API representation
func FromRequest(req *entity.Request) RequestResponse {
	return RequestResponse{
		ID:            req.ID,
		UserID:        req.UserID,
		Kind:          string(req.Kind),
		Amount:        req.Amount,
		Date:          req.Date,
		Status:        string(req.Status),
		ProofRef:      req.ProofRef,
		Phone:         req.Phone,
		Network:       req.Network,
		Level:         req.Level,
		DaysRemaining: req.DaysRemaining,
	}
}
