package handler

import (
	"net/http"

	coreport "github.com/aabinvest/vip-ledger/internal/domain/port/core"
	"github.com/aabinvest/vip-ledger/internal/domain/port/usecase"
	"github.com/aabinvest/vip-ledger/internal/domain/usecase/session"
	"github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	accounts usecase.AccountUseCase
	sessions *session.Manager
	logger   coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(accounts usecase.AccountUseCase, sessions *session.Manager, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		sessions: sessions,
		logger:   logger,
	}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.accounts.Signup(c.Request.Context(), usecase.SignupInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		InviteCode:      req.InviteCode,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.sessions.SetActiveUser(c.Request.Context(), user); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromUser(user))
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password, req.InviteCode)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.sessions.SetActiveUser(c.Request.Context(), user); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromUser(user))
}

// AdminLogin handles POST /auth/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	admin, err := h.accounts.AdminLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.sessions.SetActiveAdmin(c.Request.Context(), admin); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.AdminResponse{
		Email: admin.Email,
		Name:  admin.Name,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Request.Context()); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
