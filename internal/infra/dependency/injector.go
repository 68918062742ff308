// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/account"
	"github.com/finance-tracker/ledger/internal/application/usecase/category"
	"github.com/finance-tracker/ledger/internal/application/usecase/summary"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/infra/server/router"
	"github.com/finance-tracker/ledger/internal/integration/adapters"
	"github.com/finance-tracker/ledger/internal/integration/cache"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	stopCleanup func()
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil redisClient disables the summary cache; a nil now uses the wall clock.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, now func() time.Time) (*Injector, error) {
	if now == nil {
		now = time.Now
	}

	// Request DTOs rely on the custom binding tags.
	if err := dto.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	// Create repositories
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	summaryRepo := persistence.NewSummaryRepository(db)

	// Create adapters/services
	var summaryCache adapter.SummaryCache
	if redisClient != nil {
		summaryCache = cache.NewSummaryCache(redisClient)
	}
	identityVerifier := adapters.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer, now)

	// Create summary use cases
	getSummaryUseCase := summary.NewGetSummaryUseCase(summaryRepo, accountRepo, summaryCache, summary.Options{
		CacheTTL:          cfg.Summary.CacheTTL,
		DefaultWindowDays: cfg.Summary.DefaultWindowDays,
		Now:               now,
	})

	// Create account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	getAccountUseCase := account.NewGetAccountUseCase(accountRepo)
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo, summaryCache)
	bulkDeleteAccountsUseCase := account.NewBulkDeleteAccountsUseCase(accountRepo, summaryCache)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, summaryCache)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, summaryCache)
	bulkDeleteCategoriesUseCase := category.NewBulkDeleteCategoriesUseCase(categoryRepo, summaryCache)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, cfg.Summary.DefaultWindowDays, now)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo, categoryRepo, summaryCache)
	bulkCreateTransactionsUseCase := transaction.NewBulkCreateTransactionsUseCase(transactionRepo, accountRepo, categoryRepo, summaryCache)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, accountRepo, categoryRepo, summaryCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, summaryCache)
	bulkDeleteTransactionsUseCase := transaction.NewBulkDeleteTransactionsUseCase(transactionRepo, summaryCache)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, now)

	summaryController := controller.NewSummaryController(getSummaryUseCase)

	accountController := controller.NewAccountController(
		listAccountsUseCase,
		getAccountUseCase,
		createAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
		bulkDeleteAccountsUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		getCategoryUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		bulkDeleteCategoriesUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		bulkCreateTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		bulkDeleteTransactionsUseCase,
	)

	// Create middleware
	// No rate limiting in E2E/test environments to prevent flaky tests
	var rateLimiter *middleware.RateLimiter
	stopCleanup := func() {}
	if cfg.Server.Environment != "e2e" && cfg.Server.Environment != "test" {
		rateLimiter = middleware.NewRateLimiter()
		stopCleanup = rateLimiter.StartCleanup(middleware.DefaultCleanupInterval)
	}
	authMiddleware := middleware.NewAuthMiddleware(identityVerifier)

	// Create router
	r := router.NewRouter(
		healthController,
		accountController,
		categoryController,
		transactionController,
		summaryController,
		rateLimiter,
		authMiddleware,
		cfg.Server.CORSAllowedOrigins,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		stopCleanup: stopCleanup,
	}, nil
}

// Close stops the background work started by NewInjector.
func (i *Injector) Close() {
	i.stopCleanup()
}
