package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/duanbtco-star/giaotuyet-api/internal/config"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/entity"
	"github.com/duanbtco-star/giaotuyet-api/internal/presentation/http/handler"
	"github.com/duanbtco-star/giaotuyet-api/internal/presentation/http/middleware"
	"github.com/duanbtco-star/giaotuyet-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Menu      *handler.MenuHandler
	Customer  *handler.CustomerHandler
	Vendor    *handler.VendorHandler
	Quote     *handler.QuoteHandler
	Event     *handler.EventHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile routes
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// User administration
	protected.GET("/users", middleware.RequireRole(entity.RoleAdmin), h.Auth.ListUsers)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetSummary)

	// Menu catalog
	menu := protected.Group("/menu-items")
	{
		menu.GET("", h.Menu.List)
		menu.GET("/suggest", h.Menu.Suggest)
		menu.GET("/:id", h.Menu.Get)
		menu.POST("", middleware.RequireRole(entity.RoleAdmin), h.Menu.Create)
		menu.PUT("/:id", middleware.RequireRole(entity.RoleAdmin), h.Menu.Update)
		menu.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Menu.Delete)
	}

	// Customers
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.POST("", h.Customer.Create)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	// Vendors
	vendors := protected.Group("/vendors")
	{
		vendors.GET("", h.Vendor.List)
		vendors.GET("/:id", h.Vendor.Get)
		vendors.POST("", h.Vendor.Create)
		vendors.PUT("/:id", h.Vendor.Update)
		vendors.DELETE("/:id", h.Vendor.Delete)
	}

	// Quotes
	quotes := protected.Group("/quotes")
	{
		quotes.POST("/preview", h.Quote.Preview)
		quotes.GET("", h.Quote.List)
		quotes.GET("/:id", h.Quote.Get)
		quotes.POST("", h.Quote.Create)
		quotes.PUT("/:id", h.Quote.Update)
		quotes.DELETE("/:id", h.Quote.Delete)
		quotes.PATCH("/:id/status", h.Quote.UpdateStatus)
		quotes.GET("/:id/export", h.Quote.Export)
		quotes.POST("/:id/convert", h.Quote.Convert)
	}

	// Events
	events := protected.Group("/events")
	{
		events.GET("", h.Event.List)
		events.GET("/calendar", h.Event.Calendar)
		events.GET("/:id", h.Event.Get)
		events.PUT("/:id", h.Event.Update)
		events.PATCH("/:id/status", h.Event.UpdateStatus)
		events.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Event.Delete)
	}
}
