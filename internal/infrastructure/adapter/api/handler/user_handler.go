package handler

import (
	"net/http"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
	domainerr "github.com/aabinvest/vip-ledger/internal/domain/error"
	coreport "github.com/aabinvest/vip-ledger/internal/domain/port/core"
	"github.com/aabinvest/vip-ledger/internal/domain/port/usecase"
	"github.com/aabinvest/vip-ledger/internal/domain/usecase/session"
	"github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler handles the user-facing dashboard endpoints
type UserHandler struct {
	accounts usecase.AccountUseCase
	ledger   usecase.LedgerUseCase
	vipCycle usecase.VIPCycleUseCase
	sessions *session.Manager
	logger   coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	accounts usecase.AccountUseCase,
	ledger usecase.LedgerUseCase,
	vipCycle usecase.VIPCycleUseCase,
	sessions *session.Manager,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		accounts: accounts,
		ledger:   ledger,
		vipCycle: vipCycle,
		sessions: sessions,
		logger:   logger,
	}
}

// currentUser reads the identity placed in the context by RequireUser
func currentUser(c *gin.Context) (*entity.User, bool) {
	value, ok := c.Get(middleware.ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok
}

// Profile handles GET /user/profile. Loading the dashboard also
// evaluates any due VIP accrual so the view never lags a day behind.
func (h *UserHandler) Profile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, h.logger, domainerr.ErrNoActiveSession)
		return
	}

	if _, err := h.vipCycle.Evaluate(c.Request.Context(), user.ID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.resyncAndRespond(c, user.ID, http.StatusOK)
}

// UpdateProfile handles PUT /user/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, h.logger, domainerr.ErrNoActiveSession)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.accounts.UpdateProfile(c.Request.Context(), user.ID, usecase.ProfileUpdateInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.sessions.SetActiveUser(c.Request.Context(), updated); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUser(updated))
}

// DeleteAccount handles DELETE /user
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, h.logger, domainerr.ErrNoActiveSession)
		return
	}

	if err := h.accounts.DeleteAccount(c.Request.Context(), user.ID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	if err := h.sessions.Clear(c.Request.Context()); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitRecharge handles POST /user/recharges
func (h *UserHandler) SubmitRecharge(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, h.logger, domainerr.ErrNoActiveSession)
		return
	}

	var req dto.RechargeSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	request, err := h.ledger.SubmitRecharge(c.Request.Context(), user.ID, req.Amount, req.ProofRef)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.syncSession(c)
	c.JSON(http.StatusCreated, dto.FromRequest(request))
}

// SubmitWithdrawal handles POST /user/withdrawals
func (h *UserHandler) SubmitWithdrawal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, h.logger, domainerr.ErrNoActiveSession)
		return
	}

	var req dto.WithdrawalSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	request, err := h.ledger.SubmitWithdrawal(c.Request.Context(), user.ID, req.Amount, req.Phone, req.Network)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.syncSession(c)
	c.JSON(http.StatusCreated, dto.FromRequest(request))
}

// PurchaseVIP handles POST /user/vip
func (h *UserHandler) PurchaseVIP(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, h.logger, domainerr.ErrNoActiveSession)
		return
	}

	var req dto.VIPPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	request, err := h.ledger.SubmitVIPPurchase(c.Request.Context(), user.ID, req.Level)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.syncSession(c)
	c.JSON(http.StatusCreated, dto.FromRequest(request))
}

// Tiers handles GET /tiers
func (h *UserHandler) Tiers(c *gin.Context) {
	tiers := entity.Tiers()
	out := make([]dto.TierResponse, 0, len(tiers))
	for _, tier := range tiers {
		out = append(out, dto.TierResponse{
			Level:       tier.Level,
			Price:       tier.Price,
			DailyProfit: tier.DailyProfit,
		})
	}
	c.JSON(http.StatusOK, out)
}

// resyncAndRespond re-reads the canonical aggregate, refreshes the
// session mirror and writes it out.
func (h *UserHandler) resyncAndRespond(c *gin.Context, userID string, status int) {
	h.syncSession(c)

	fresh, err := h.accounts.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(status, dto.FromUser(fresh))
}

// syncSession refreshes the session mirror after a ledger write. A
// failed sync is logged, not surfaced: the write itself succeeded.
func (h *UserHandler) syncSession(c *gin.Context) {
	if err := h.sessions.Sync(c.Request.Context()); err != nil {
		h.logger.Warn("Session sync after write failed", map[string]any{
			"error": err.Error(),
		})
	}
}
