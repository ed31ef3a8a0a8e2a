package entity

import (
	"encoding/json"
	"time"

	errs "github.com/aabinvest/vip-ledger/internal/domain/error"
	coreport "github.com/aabinvest/vip-ledger/internal/domain/port/core"
)

// SignupBonus is credited to every new account at registration.
const SignupBonus int64 = 2000

// Referral records one referred signup on the inviter's side.
// Email is a weak reference: deleting the referee leaves it dangling.
type Referral struct {
	Email         string
	Date          time.Time
	Bonus         int64
	LastBonusDate *time.Time
}

// User represents one registrant with their financial and VIP state.
// Balance is private so every mutation goes through a method that
// stamps UpdatedAt.
type User struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Password string // plaintext equality check only, see repository docs

	balance          int64 // whole currency units
	DailyProfit      int64
	TotalEarnings    int64
	ReferralEarnings int64

	VIPLevel         int
	VIPApprovedDate  *time.Time
	LastProfitDate   *time.Time
	VIPDaysCompleted int

	InvitationCode string
	InvitedBy      string // inviter's email, empty when none
	HasUsedInvite  bool
	Referrals      []Referral

	Transactions []Transaction
	Requests     []Request

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a registrant seeded with the signup bonus.
func NewUser(id, name, email, phone, password, invitationCode string, timeProvider coreport.TimeProvider) (*User, error) {
	if id == "" {
		return nil, errs.ErrInvalidUserID
	}
	if email == "" {
		return nil, errs.ErrInvalidEmail
	}
	now := timeProvider.Now()
	return &User{
		ID:             id,
		Name:           name,
		Email:          email,
		Phone:          phone,
		Password:       password,
		balance:        SignupBonus,
		InvitationCode: invitationCode,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Balance returns the current balance in whole currency units.
func (u *User) Balance() int64 {
	return u.balance
}

// SetBalance overwrites the balance directly (repository hydration).
func (u *User) SetBalance(balance int64) {
	u.balance = balance
}

// Credit adds amount to the balance.
func (u *User) Credit(amount int64, timeProvider coreport.TimeProvider) {
	u.balance += amount
	u.UpdatedAt = timeProvider.Now()
}

// Debit subtracts amount from the balance, failing when funds are short.
func (u *User) Debit(amount int64, timeProvider coreport.TimeProvider) error {
	if u.balance < amount {
		return errs.ErrInsufficientFunds
	}
	u.balance -= amount
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// CanAfford reports whether the balance covers amount.
func (u *User) CanAfford(amount int64) bool {
	return u.balance >= amount
}

// HasActiveVIP reports whether a VIP cycle is currently accruing.
func (u *User) HasActiveVIP() bool {
	return u.VIPLevel > 0 && u.VIPApprovedDate != nil
}

// ActivateVIP starts (or restarts) a cycle for the given tier. Any
// prior cycle progress is discarded.
func (u *User) ActivateVIP(tier Tier, timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	u.VIPLevel = tier.Level
	u.DailyProfit = tier.DailyProfit
	u.VIPApprovedDate = &now
	u.LastProfitDate = nil
	u.VIPDaysCompleted = 0
	u.UpdatedAt = now
}

// CompleteVIPCycle terminates the subscription after the 60-day window.
func (u *User) CompleteVIPCycle(timeProvider coreport.TimeProvider) {
	u.VIPLevel = 0
	u.DailyProfit = 0
	u.VIPDaysCompleted = CycleDays
	u.UpdatedAt = timeProvider.Now()
}

// AccrueDailyProfit credits one day of VIP profit and advances the
// cycle counter. The caller is responsible for the once-per-calendar-day
// guard.
func (u *User) AccrueDailyProfit(timeProvider coreport.TimeProvider) int64 {
	now := timeProvider.Now()
	profit := u.DailyProfit
	u.balance += profit
	u.TotalEarnings += profit
	u.VIPDaysCompleted++
	u.LastProfitDate = &now
	u.UpdatedAt = now
	return profit
}

// CreditReferralBonus adds a referral payout to balance and the
// referral earnings counter, and folds it into the stored referral
// record for the referee when one exists.
func (u *User) CreditReferralBonus(refereeEmail string, bonus int64, timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	u.balance += bonus
	u.ReferralEarnings += bonus
	for i := range u.Referrals {
		if u.Referrals[i].Email == refereeEmail {
			u.Referrals[i].Bonus += bonus
			u.Referrals[i].LastBonusDate = &now
			break
		}
	}
	u.UpdatedAt = now
}

// AddReferral appends a referral record for a newly referred signup.
func (u *User) AddReferral(refereeEmail string, bonus int64, timeProvider coreport.TimeProvider) {
	u.Referrals = append(u.Referrals, Referral{
		Email: refereeEmail,
		Date:  timeProvider.Now(),
		Bonus: bonus,
	})
	u.UpdatedAt = timeProvider.Now()
}

// AppendTransaction appends a ledger entry to the user's history.
func (u *User) AppendTransaction(txn *Transaction) {
	u.Transactions = append(u.Transactions, *txn)
}

// AppendRequest appends a pending request owned by this user.
func (u *User) AppendRequest(req *Request) {
	u.Requests = append(u.Requests, *req)
}

// FindRequest locates an owned request by ID.
func (u *User) FindRequest(requestID string) (*Request, error) {
	for i := range u.Requests {
		if u.Requests[i].ID == requestID {
			return &u.Requests[i], nil
		}
	}
	return nil, errs.ErrRequestNotFound
}

// FindTransactionByRequest locates the ledger entry mirroring a request.
func (u *User) FindTransactionByRequest(requestID string) (*Transaction, error) {
	for i := range u.Transactions {
		if u.Transactions[i].RequestID == requestID {
			return &u.Transactions[i], nil
		}
	}
	return nil, errs.ErrTransactionNotFound
}

// userJSON mirrors User for serialization: the private balance must
// survive the session-slot round trip.
type userJSON struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	Password         string        `json:"password"`
	Balance          int64         `json:"balance"`
	DailyProfit      int64         `json:"dailyProfit"`
	TotalEarnings    int64         `json:"totalEarnings"`
	ReferralEarnings int64         `json:"referralEarnings"`
	VIPLevel         int           `json:"vipLevel"`
	VIPApprovedDate  *time.Time    `json:"vipApprovedDate"`
	LastProfitDate   *time.Time    `json:"lastProfitDate"`
	VIPDaysCompleted int           `json:"vipDaysCompleted"`
	InvitationCode   string        `json:"invitationCode"`
	InvitedBy        string        `json:"invitedBy"`
	HasUsedInvite    bool          `json:"hasUsedInvite"`
	Referrals        []Referral    `json:"referrals"`
	Transactions     []Transaction `json:"transactions"`
	Requests         []Request     `json:"requests"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// MarshalJSON implements json.Marshaler.
func (u *User) MarshalJSON() ([]byte, error) {
	return json.Marshal(userJSON{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Phone:            u.Phone,
		Password:         u.Password,
		Balance:          u.balance,
		DailyProfit:      u.DailyProfit,
		TotalEarnings:    u.TotalEarnings,
		ReferralEarnings: u.ReferralEarnings,
		VIPLevel:         u.VIPLevel,
		VIPApprovedDate:  u.VIPApprovedDate,
		LastProfitDate:   u.LastProfitDate,
		VIPDaysCompleted: u.VIPDaysCompleted,
		InvitationCode:   u.InvitationCode,
		InvitedBy:        u.InvitedBy,
		HasUsedInvite:    u.HasUsedInvite,
		Referrals:        u.Referrals,
		Transactions:     u.Transactions,
		Requests:         u.Requests,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw userJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*u = User{
		ID:               raw.ID,
		Name:             raw.Name,
		Email:            raw.Email,
		Phone:            raw.Phone,
		Password:         raw.Password,
		balance:          raw.Balance,
		DailyProfit:      raw.DailyProfit,
		TotalEarnings:    raw.TotalEarnings,
		ReferralEarnings: raw.ReferralEarnings,
		VIPLevel:         raw.VIPLevel,
		VIPApprovedDate:  raw.VIPApprovedDate,
		LastProfitDate:   raw.LastProfitDate,
		VIPDaysCompleted: raw.VIPDaysCompleted,
		InvitationCode:   raw.InvitationCode,
		InvitedBy:        raw.InvitedBy,
		HasUsedInvite:    raw.HasUsedInvite,
		Referrals:        raw.Referrals,
		Transactions:     raw.Transactions,
		Requests:         raw.Requests,
		CreatedAt:        raw.CreatedAt,
		UpdatedAt:        raw.UpdatedAt,
	}
	return nil
}

// PendingRequests returns the user's undecided requests of one kind.
func (u *User) PendingRequests(kind RequestKind) []Request {
	var out []Request
	for _, r := range u.Requests {
		if r.Kind == kind && r.IsPending() {
			out = append(out, r)
		}
	}
	return out
}
