package dto

// RechargeSubmitRequest represents the API request for a recharge submission
type RechargeSubmitRequest struct {
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	ProofRef string `json:"proofRef"`
}

// WithdrawalSubmitRequest represents the API request for a withdrawal submission
type WithdrawalSubmitRequest struct {
	Amount  int64  `json:"amount" binding:"required,gt=0"`
	Phone   string `json:"phone" binding:"required"`
	Network string `json:"network" binding:"required"`
}

// VIPPurchaseRequest represents the API request for a VIP tier purchase
type VIPPurchaseRequest struct {
	Level int `json:"level" binding:"required,gt=0"`
}

// TierResponse is one row of the published tier table
type TierResponse struct {
	Level       int   `json:"level"`
	Price       int64 `json:"price"`
	DailyProfit int64 `json:"dailyProfit"`
}

// PendingRequestResponse pairs a request with its owner for admin listings
type PendingRequestResponse struct {
	UserID    string          `json:"userId"`
	UserName  string          `json:"userName"`
	UserEmail string          `json:"userEmail"`
	Request   RequestResponse `json:"request"`
}

// DecisionRequest identifies the request an admin is deciding
type DecisionRequest struct {
	UserID    string `json:"userId" binding:"required"`
	RequestID string `json:"requestId" binding:"required"`
}

// StatsResponse summarizes the store for the admin dashboard
type StatsResponse struct {
	TotalUsers         int   `json:"totalUsers"`
	PendingRecharges   int   `json:"pendingRecharges"`
	PendingWithdrawals int   `json:"pendingWithdrawals"`
	PendingVIPs        int   `json:"pendingVips"`
	TotalBalance       int64 `json:"totalBalance"`
}
