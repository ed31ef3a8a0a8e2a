package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	accountUseCase "github.com/aabinvest/vip-ledger/internal/domain/usecase/account"
	ledgerUseCase "github.com/aabinvest/vip-ledger/internal/domain/usecase/ledger"
	sessionUseCase "github.com/aabinvest/vip-ledger/internal/domain/usecase/session"
	vipCycleUseCase "github.com/aabinvest/vip-ledger/internal/domain/usecase/vipcycle"

	"github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/database"
	"github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/database/migration"
	idGenerator "github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/id"
	"github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/logger"
	"github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/repository"
	"github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/scheduler"
	redisSession "github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/session"
	timeProvider "github.com/aabinvest/vip-ledger/internal/infrastructure/adapter/time"
	"github.com/aabinvest/vip-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()
	idGen := idGenerator.NewUUIDGenerator()

	// Database
	dbConfig := database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.Username,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := database.NewConnection(dbConfig, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = database.CloseConnection(db, appLogger) }()

	migrationMgr := migration.NewManager(db, tp, appLogger)
	if err := migrationMgr.Migrate(context.Background()); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Redis session store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() { _ = redisClient.Close() }()

	sessionStore := redisSession.NewRedisStore(redisClient, appLogger)
	if err := sessionStore.Ping(context.Background()); err != nil {
		appLogger.Error("Failed to connect to Redis", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories and unit of work
	userRepo := repository.NewUserRepository(db, tp, appLogger)
	adminRepo := repository.NewAdminRepository(db, tp, appLogger)
	uow := database.NewUnitOfWork(db, tp, appLogger)

	// Use cases
	accounts := accountUseCase.NewService(userRepo, adminRepo, idGen, tp, appLogger)
	ledger := ledgerUseCase.NewService(uow, userRepo, idGen, tp, appLogger)
	vipCycle := vipCycleUseCase.NewScheduler(userRepo, idGen, tp, appLogger)
	sessions := sessionUseCase.NewManager(sessionStore, userRepo, appLogger)

	// Follow session changes published by other instances
	followCtx, stopFollow := context.WithCancel(context.Background())
	defer stopFollow()
	if err := sessions.Follow(followCtx); err != nil {
		appLogger.Error("Failed to follow session store", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer sessions.Stop()

	// Background tick: VIP accrual sweep + session re-sync
	tick := scheduler.NewScheduler(vipCycle, sessions, appLogger, cfg.Scheduler.TickInterval)
	if err := tick.Start(context.Background()); err != nil {
		appLogger.Error("Failed to start scheduler", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer tick.Stop()

	// HTTP layer
	authHandler := handler.NewAuthHandler(accounts, sessions, appLogger)
	userHandler := handler.NewUserHandler(accounts, ledger, vipCycle, sessions, appLogger)
	adminHandler := handler.NewAdminHandler(accounts, ledger, sessions, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, authHandler, userHandler, adminHandler, sessions)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
