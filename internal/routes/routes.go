// Package routes defines the API routing configuration.
// It wires repositories, services and handlers together and mounts them
// with their authentication and throttling middleware.
package routes

import (
	"fmt"

	"chargeflow/internal/config"
	"chargeflow/internal/handlers"
	"chargeflow/internal/middleware"
	"chargeflow/internal/models"
	"chargeflow/internal/repositories"
	"chargeflow/internal/repositories/cache"
	"chargeflow/internal/services/auth"
	"chargeflow/internal/services/phone"
	"chargeflow/internal/services/transaction"
	"chargeflow/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Dependencies are the process-wide resources the routes are built from.
type Dependencies struct {
	Config   *config.Config
	DB       *gorm.DB
	Cache    *cache.CacheService
	Registry *prometheus.Registry
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Dependencies) error {
	if deps.Cache == nil {
		return fmt.Errorf("redis cache is required for the token denylist")
	}
	cfg := deps.Config

	isolation, err := config.ParseIsolationLevel(cfg.Database.IsolationLevel)
	if err != nil {
		return err
	}
	sqlDB, err := deps.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(deps.DB)
	ledgerRepo := repositories.NewLedgerRepository(deps.DB, isolation)

	// Services
	var metrics transaction.MetricsCollector = &transaction.NoopMetricsCollector{}
	if deps.Registry != nil {
		metrics = transaction.NewPrometheusMetrics(deps.Registry)
	}
	authService := auth.NewService(userRepo, deps.Cache, cfg.JWT)
	phoneService := phone.NewService(ledgerRepo)
	walletService := wallet.NewService(ledgerRepo, deps.Cache)
	transactionService := transaction.NewService(ledgerRepo, deps.Cache, metrics, transaction.Config{})

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	phoneHandler := handlers.NewPhoneHandler(phoneService)
	walletHandler := handlers.NewWalletHandler(walletService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	adminHandler := handlers.NewAdminHandler(transactionService)
	healthHandler := handlers.NewHealthHandler(sqlDB, handlers.PingFunc(deps.Cache.HealthCheck))

	authMiddleware := middleware.NewAuthMiddleware(userRepo, cfg.JWT)

	app.Get("/health", healthHandler.HealthCheck)
	if deps.Registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	v1 := app.Group("/api/v1")
	setupUserRoutes(v1, cfg.RateLimits, authMiddleware, authHandler, phoneHandler, walletHandler)
	setupTransactionRoutes(v1, cfg.RateLimits, authMiddleware, transactionHandler)
	setupAdminRoutes(app, authMiddleware, adminHandler)
	return nil
}

func setupUserRoutes(router fiber.Router, limits config.RateLimitsConfig, authMiddleware *middleware.AuthMiddleware,
	authHandler *handlers.AuthHandler, phoneHandler *handlers.PhoneHandler, walletHandler *handlers.WalletHandler) {
	users := router.Group("/users")

	// Public endpoints
	users.Post("/register", middleware.RateLimit("registration", limits.Registration), authHandler.Register)
	users.Post("/login", middleware.RateLimit("login", limits.Login), authHandler.Login)
	users.Post("/refresh", middleware.RateLimit("refresh", limits.Login), authHandler.Refresh)

	// Authenticated endpoints
	authenticated := authMiddleware.Handler()
	users.Post("/logout", authenticated, authHandler.Logout)
	users.Get("/phone-number", authenticated, phoneHandler.List)
	users.Post("/phone-number", authenticated, middleware.HasPermission(models.PermissionPhoneNumberWrite), phoneHandler.Create)
	users.Get("/wallet", authenticated, middleware.HasPermission(models.PermissionWalletRead), walletHandler.GetWallet)
}

func setupTransactionRoutes(router fiber.Router, limits config.RateLimitsConfig, authMiddleware *middleware.AuthMiddleware,
	h *handlers.TransactionHandler) {
	transactions := router.Group("/transactions", authMiddleware.Handler())
	create := middleware.RateLimit("transaction_create", limits.TransactionCreate)

	transactions.Get("/", middleware.RateLimit("transaction_list", limits.TransactionList),
		middleware.HasPermission(models.PermissionTransactionRead), h.ListTransactions)
	transactions.Post("/credit-request", create, middleware.HasPermission(models.PermissionCreditRequestOpen), h.CreateCreditRequest)
	// Non-admins reach the service and get PermissionDenied back.
	transactions.Post("/approve", create, h.ProcessCreditRequest)
	transactions.Post("/sell-charge", create, middleware.HasPermission(models.PermissionTransactionWrite), h.SellCharge)
}

func setupAdminRoutes(app *fiber.App, authMiddleware *middleware.AuthMiddleware, h *handlers.AdminHandler) {
	admin := app.Group("/api/admin", authMiddleware.Handler(), middleware.AdminAuthMiddleware())

	admin.Get("/credit-requests", middleware.HasPermission(models.PermissionReadAdmin), h.ListCreditRequests)
	admin.Get("/reconciliation", middleware.HasPermission(models.PermissionReadAdmin), h.Reconciliation)
}
