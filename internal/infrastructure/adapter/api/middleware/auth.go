package middleware

import (
	"net/http"

	domainerr "github.com/aabinvest/vip-ledger/internal/domain/error"
	"github.com/aabinvest/vip-ledger/internal/domain/usecase/session"
	"github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares
const (
	ContextUserKey  = "currentUser"
	ContextAdminKey = "currentAdmin"
)

// RequireUser rejects requests without an active user session
func RequireUser(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := sessions.ActiveUser()
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrNoActiveSession),
				Message: "No active user session",
			})
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireAdmin rejects requests without an active admin session
func RequireAdmin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := sessions.ActiveAdmin()
		if admin == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrNoActiveSession),
				Message: "No active admin session",
			})
			return
		}
		c.Set(ContextAdminKey, admin)
		c.Next()
	}
}
