package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/marketpay/marketpay/internal/domain/usecase/auth"
	payoutUseCase "github.com/marketpay/marketpay/internal/domain/usecase/payout"
	platformUseCase "github.com/marketpay/marketpay/internal/domain/usecase/platform"
	transactionUseCase "github.com/marketpay/marketpay/internal/domain/usecase/transaction"
	userUseCase "github.com/marketpay/marketpay/internal/domain/usecase/user"

	"github.com/marketpay/marketpay/internal/infrastructure/adapter/api/handler"
	"github.com/marketpay/marketpay/internal/infrastructure/adapter/api/routes"
	"github.com/marketpay/marketpay/internal/infrastructure/adapter/database"
	"github.com/marketpay/marketpay/internal/infrastructure/adapter/database/migration"
	"github.com/marketpay/marketpay/internal/infrastructure/adapter/logger"
	"github.com/marketpay/marketpay/internal/infrastructure/adapter/repository"
	"github.com/marketpay/marketpay/internal/infrastructure/adapter/security"
	stripeGateway "github.com/marketpay/marketpay/internal/infrastructure/adapter/stripe"
	timeProvider "github.com/marketpay/marketpay/internal/infrastructure/adapter/time"
	"github.com/marketpay/marketpay/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	isProduction := cfg.Environment == "production"
	if isProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(isProduction)
	defer appLogger.Flush()

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(&cfg.Database, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories and unit of work
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)
	payoutRepo := repository.NewPayoutRepository(dbManager.DB(), appLogger)
	userLockRepo := repository.NewUserLockRepository(dbManager.DB(), tp, appLogger)
	uow := dbManager.CreateUnitOfWork()

	// Stale locks from a previous run would block payouts until expiry
	if err := userLockRepo.CleanupExpiredLocks(context.Background()); err != nil {
		appLogger.Warn("Failed to clean up expired locks", map[string]any{
			"error": err.Error(),
		})
	}

	// Security and gateway adapters
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := security.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	gateway := stripeGateway.NewGateway(
		cfg.Stripe.SecretKey,
		cfg.Stripe.Currency,
		cfg.Stripe.RequestTimeout,
		tp,
		appLogger,
	)

	// Use cases
	lockTimeout := time.Duration(cfg.Payout.LockTimeoutMs) * time.Millisecond
	authService := authUseCase.NewService(userRepo, gateway, hasher, tokens, tp, appLogger)
	payoutService := payoutUseCase.NewService(uow, userRepo, userLockRepo, gateway, tp, appLogger, lockTimeout)
	platformService := platformUseCase.NewService(transactionRepo, gateway, tp, appLogger, cfg.Stripe.Currency)
	transactionService := transactionUseCase.NewService(transactionRepo, payoutRepo, appLogger)
	userService := userUseCase.NewService(userRepo, payoutRepo, gateway, tp, appLogger)

	// API handlers
	devMode := !isProduction
	authHandler := handler.NewAuthHandler(authService, appLogger, devMode)
	platformHandler := handler.NewPlatformHandler(platformService, payoutService, appLogger, devMode)
	transactionHandler := handler.NewTransactionHandler(transactionService, appLogger, devMode)
	userHandler := handler.NewUserHandler(userService, appLogger, devMode)
	healthHandler := handler.NewHealthHandler(dbManager, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(router, tokens, appLogger,
		authHandler, platformHandler, transactionHandler, userHandler, healthHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
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

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Database.Host == "" {
		missing = append(missing, "database.host")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "database.database")
	}
	if cfg.Auth.JWTSecret == "" {
		missing = append(missing, "auth.jwtSecret")
	}
	if cfg.Stripe.SecretKey == "" {
		missing = append(missing, "stripe.secretKey")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
