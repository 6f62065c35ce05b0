package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/docs"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/config"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/database"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/handler"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/middleware"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/repository"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/sequence"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/service"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/upload"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/logger"
)

// @title Voyage Central API
// @version 1.0
// @description RESTful API for multi-tenant travel agency back-office management
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Voyage Central API"
	docs.SwaggerInfo.Description = "RESTful API for multi-tenant travel agency back-office management"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Voyage Central API...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize repositories
	agencyRepo := repository.NewAgencyRepository(db.DB)
	branchRepo := repository.NewBranchRepository(db.DB)
	userRepo := repository.NewUserRepository(db.DB)
	clientRepo := repository.NewClientRepository(db.DB)
	tourRepo := repository.NewTourRepository(db.DB)
	bookingRepo := repository.NewBookingRepository(db.DB)
	groupBookingRepo := repository.NewGroupBookingRepository(db.DB)
	receiptRepo := repository.NewReceiptRepository(db.DB)
	invoiceRepo := repository.NewInvoiceRepository(db.DB)
	referenceRepo := repository.NewReferenceRepository(db.DB)

	// Shared infrastructure
	uploads := upload.NewManager(&cfg.Upload, appLogger)
	sequences := sequence.NewGenerator()

	// Initialize services
	authService := service.NewAuthService(userRepo, &cfg.JWT)
	agencyService := service.NewAgencyService(agencyRepo, uploads, db.DB)
	branchService := service.NewBranchService(branchRepo)
	userService := service.NewUserService(userRepo)
	clientService := service.NewClientService(clientRepo, uploads, db.DB)
	tourService := service.NewTourService(tourRepo, uploads, db.DB)
	bookingService := service.NewBookingService(bookingRepo, sequences, db.DB)
	groupBookingService := service.NewGroupBookingService(groupBookingRepo, sequences, db.DB)
	receiptService := service.NewReceiptService(receiptRepo, bookingRepo, sequences, db.DB)
	invoiceService := service.NewInvoiceService(invoiceRepo, bookingRepo, groupBookingRepo, sequences, db.DB)
	referenceService := service.NewReferenceService(referenceRepo)
	exportService := service.NewExportService(bookingRepo)

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(&cfg.CORS))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Serve stored attachments
	router.Static(cfg.Upload.PublicBasePath, cfg.Upload.PermanentRoot)

	// Setup routes
	handler.SetupRoutes(
		router,
		authService,
		agencyService,
		branchService,
		userService,
		clientService,
		tourService,
		bookingService,
		groupBookingService,
		receiptService,
		invoiceService,
		referenceService,
		exportService,
		uploads,
		appLogger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
