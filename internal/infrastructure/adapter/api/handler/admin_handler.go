package handler

import (
	"net/http"

	"github.com/aabinvest/vip-ledger/internal/domain/entity"
	domainerr "github.com/aabinvest/vip-ledger/internal/domain/error"
	coreport "github.com/aabinvest/vip-ledger/internal/domain/port/core"
	"github.com/aabinvest/vip-ledger/internal/domain/port/usecase"
	"github.com/aabinvest/vip-ledger/internal/domain/usecase/session"
	"github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles the admin dashboard endpoints
type AdminHandler struct {
	accounts usecase.AccountUseCase
	ledger   usecase.LedgerUseCase
	sessions *session.Manager
	logger   coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	accounts usecase.AccountUseCase,
	ledger usecase.LedgerUseCase,
	sessions *session.Manager,
	logger coreport.Logger,
) *AdminHandler {
	return &AdminHandler{
		accounts: accounts,
		ledger:   ledger,
		sessions: sessions,
		logger:   logger,
	}
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.accounts.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, dto.FromUser(user))
	}
	c.JSON(http.StatusOK, out)
}

// GetUser handles GET /admin/users/:userId
func (h *AdminHandler) GetUser(c *gin.Context) {
	user, err := h.accounts.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromUser(user))
}

// DeleteUser handles DELETE /admin/users/:userId
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.accounts.DeleteAccount(c.Request.Context(), c.Param("userId")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats handles GET /admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.accounts.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalUsers:         stats.TotalUsers,
		PendingRecharges:   stats.PendingRecharges,
		PendingWithdrawals: stats.PendingWithdrawals,
		PendingVIPs:        stats.PendingVIPs,
		TotalBalance:       stats.TotalBalance,
	})
}

// PendingRequests handles GET /admin/requests/:kind
func (h *AdminHandler) PendingRequests(c *gin.Context) {
	kind, ok := requestKind(c.Param("kind"))
	if !ok {
		respondBadKind(c)
		return
	}

	pending, err := h.ledger.PendingRequests(c.Request.Context(), kind)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	out := make([]dto.PendingRequestResponse, 0, len(pending))
	for _, p := range pending {
		out = append(out, dto.PendingRequestResponse{
			UserID:    p.UserID,
			UserName:  p.UserName,
			UserEmail: p.UserEmail,
			Request:   dto.FromRequest(&p.Request),
		})
	}
	c.JSON(http.StatusOK, out)
}

// Approve handles POST /admin/requests/:kind/approve
func (h *AdminHandler) Approve(c *gin.Context) {
	h.decide(c, true)
}

// Reject handles POST /admin/requests/:kind/reject
func (h *AdminHandler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *AdminHandler) decide(c *gin.Context, approve bool) {
	kind, ok := requestKind(c.Param("kind"))
	if !ok {
		respondBadKind(c)
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	var err error
	switch kind {
	case entity.KindRecharge:
		if approve {
			err = h.ledger.ApproveRecharge(ctx, req.UserID, req.RequestID)
		} else {
			err = h.ledger.RejectRecharge(ctx, req.UserID, req.RequestID)
		}
	case entity.KindWithdrawal:
		if approve {
			err = h.ledger.ApproveWithdrawal(ctx, req.UserID, req.RequestID)
		} else {
			err = h.ledger.RejectWithdrawal(ctx, req.UserID, req.RequestID)
		}
	case entity.KindVIP:
		if approve {
			err = h.ledger.ApproveVIP(ctx, req.UserID, req.RequestID)
		} else {
			err = h.ledger.RejectVIP(ctx, req.UserID, req.RequestID)
		}
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	// The decided user's open session should see the new balance.
	if err := h.sessions.Sync(ctx); err != nil {
		h.logger.Warn("Session sync after decision failed", map[string]any{
			"error": err.Error(),
		})
	}
	c.Status(http.StatusNoContent)
}

func requestKind(raw string) (entity.RequestKind, bool) {
	switch entity.RequestKind(raw) {
	case entity.KindRecharge, entity.KindWithdrawal, entity.KindVIP:
		return entity.RequestKind(raw), true
	default:
		return "", false
	}
}

func respondBadKind(c *gin.Context) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeValidation,
		Message: "Unknown request kind",
	})
}
