package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/marketpay/marketpay/internal/domain/port/core"
	"github.com/marketpay/marketpay/internal/domain/port/security"
	"github.com/marketpay/marketpay/internal/infrastructure/adapter/api/handler"
	"github.com/marketpay/marketpay/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API. Everything except
// /auth/* and /health requires a bearer token.
func SetupRoutes(
	router *gin.Engine,
	tokens security.TokenIssuer,
	logger coreport.Logger,
	authHandler *handler.AuthHandler,
	platformHandler *handler.PlatformHandler,
	transactionHandler *handler.TransactionHandler,
	userHandler *handler.UserHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Health)

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	authenticated := router.Group("/", middleware.Auth(tokens, logger))

	platformRoutes := authenticated.Group("/platform")
	{
		platformRoutes.GET("/balance", platformHandler.GetBalance)
		platformRoutes.POST("/recharge", platformHandler.Recharge)
		platformRoutes.POST("/payout", platformHandler.ProcessPayout)
		platformRoutes.GET("/reconciliation", platformHandler.Reconciliation)
	}

	transactionRoutes := authenticated.Group("/transactions")
	{
		transactionRoutes.GET("", transactionHandler.ListAll)
		transactionRoutes.GET("/:id", transactionHandler.GetByID)
		transactionRoutes.GET("/user/:userId", transactionHandler.ListByUser)
	}

	userRoutes := authenticated.Group("/users")
	{
		userRoutes.GET("/:id", userHandler.GetProfile)
		userRoutes.POST("/:id/bank-account", userHandler.AddBankAccount)
		userRoutes.GET("/:id/payouts", userHandler.PayoutHistory)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS())
}
