package routes

import (
	coreport "github.com/aabinvest/vip-ledger/internal/domain/port/core"
	"github.com/aabinvest/vip-ledger/internal/domain/usecase/session"
	"github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	adminHandler *handler.AdminHandler,
	sessions *session.Manager,
) {
	// Public routes
	router.GET("/tiers", userHandler.Tiers)

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/admin/login", authHandler.AdminLogin)
		authRoutes.POST("/logout", authHandler.Logout)
	}

	// User dashboard routes
	userRoutes := router.Group("/user")
	userRoutes.Use(middleware.RequireUser(sessions))
	{
		userRoutes.GET("/profile", userHandler.Profile)
		userRoutes.PUT("/profile", userHandler.UpdateProfile)
		userRoutes.DELETE("", userHandler.DeleteAccount)
		userRoutes.POST("/recharges", userHandler.SubmitRecharge)
		userRoutes.POST("/withdrawals", userHandler.SubmitWithdrawal)
		userRoutes.POST("/vip", userHandler.PurchaseVIP)
	}

	// Admin dashboard routes
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(middleware.RequireAdmin(sessions))
	{
		adminRoutes.GET("/users", adminHandler.ListUsers)
		adminRoutes.GET("/users/:userId", adminHandler.GetUser)
		adminRoutes.DELETE("/users/:userId", adminHandler.DeleteUser)
		adminRoutes.GET("/stats", adminHandler.Stats)
		adminRoutes.GET("/requests/:kind", adminHandler.PendingRequests)
		adminRoutes.POST("/requests/:kind/approve", adminHandler.Approve)
		adminRoutes.POST("/requests/:kind/reject", adminHandler.Reject)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
