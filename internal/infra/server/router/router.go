// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	accountController     *controller.AccountController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	summaryController     *controller.SummaryController
	rateLimiter           *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	allowedOrigins        []string
}

// NewRouter creates a new router instance with all dependencies.
// A nil rateLimiter disables rate limiting.
func NewRouter(
	healthController *controller.HealthController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	summaryController *controller.SummaryController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:      healthController,
		accountController:     accountController,
		categoryController:    categoryController,
		transactionController: transactionController,
		summaryController:     summaryController,
		rateLimiter:           rateLimiter,
		authMiddleware:        authMiddleware,
		allowedOrigins:        allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.setupCORS(environment)

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupCORS allows the configured origins. Outside production every origin is
// allowed when none are configured; in production CORS stays off instead.
func (r *Router) setupCORS(environment string) {
	corsConfig := cors.DefaultConfig()
	switch {
	case len(r.allowedOrigins) > 0:
		corsConfig.AllowOrigins = r.allowedOrigins
	case environment != "production":
		corsConfig.AllowAllOrigins = true
	default:
		return
	}
	corsConfig.AddAllowMethods("PATCH")
	corsConfig.AddAllowHeaders("Authorization")
	corsConfig.AddExposeHeaders("Content-Disposition")

	r.engine.Use(cors.New(corsConfig))
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every route requires authentication.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}
	{
		summary := v1.Group("/summary")
		{
			summary.GET("", r.summaryController.Get)
			summary.GET("/export", r.summaryController.Export)
		}

		accounts := v1.Group("/accounts")
		{
			accounts.GET("", r.accountController.List)
			accounts.POST("", r.accountController.Create)
			accounts.POST("/bulk-delete", r.accountController.BulkDelete)
			accounts.GET("/:id", r.accountController.Get)
			accounts.PATCH("/:id", r.accountController.Update)
			accounts.DELETE("/:id", r.accountController.Delete)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.POST("/bulk-delete", r.categoryController.BulkDelete)
			categories.GET("/:id", r.categoryController.Get)
			categories.PATCH("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.POST("/bulk-create", r.transactionController.BulkCreate)
			transactions.POST("/bulk-delete", r.transactionController.BulkDelete)
			transactions.GET("/:id", r.transactionController.Get)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
