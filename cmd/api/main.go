package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/duanbtco-star/giaotuyet-api/internal/application/service"
	"github.com/duanbtco-star/giaotuyet-api/internal/config"
	"github.com/duanbtco-star/giaotuyet-api/internal/infrastructure/database"
	"github.com/duanbtco-star/giaotuyet-api/internal/infrastructure/repository"
	"github.com/duanbtco-star/giaotuyet-api/internal/presentation/http/handler"
	"github.com/duanbtco-star/giaotuyet-api/internal/presentation/http/routes"
	"github.com/duanbtco-star/giaotuyet-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	eventRepo := repository.NewEventRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	menuService := service.NewMenuService(menuRepo)
	customerService := service.NewCustomerService(customerRepo)
	vendorService := service.NewVendorService(vendorRepo)
	quoteService := service.NewQuoteService(quoteRepo, menuRepo, customerRepo)
	eventService := service.NewEventService(eventRepo, quoteRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Menu:      handler.NewMenuHandler(menuService, quoteService),
		Customer:  handler.NewCustomerHandler(customerService),
		Vendor:    handler.NewVendorHandler(vendorService),
		Quote:     handler.NewQuoteHandler(quoteService, eventService),
		Event:     handler.NewEventHandler(eventService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup router
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Start server
	addr := ":" + cfg.App.Port
	log.Printf("Starting %s on %s (env: %s)", cfg.App.Name, addr, cfg.App.Env)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
