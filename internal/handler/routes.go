package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/middleware"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/service"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/upload"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/logger"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	agencyService service.AgencyService,
	branchService service.BranchService,
	userService service.UserService,
	clientService service.ClientService,
	tourService service.TourService,
	bookingService service.BookingService,
	groupBookingService service.GroupBookingService,
	receiptService service.ReceiptService,
	invoiceService service.InvoiceService,
	referenceService service.ReferenceService,
	exportService service.ExportService,
	uploads *upload.Manager,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(authService, logger)
	agencyHandler := NewAgencyHandler(agencyService, uploads, logger)
	branchHandler := NewBranchHandler(branchService, logger)
	userHandler := NewUserHandler(userService, logger)
	clientHandler := NewClientHandler(clientService, uploads, logger)
	tourHandler := NewTourHandler(tourService, uploads, logger)
	bookingHandler := NewBookingHandler(bookingService, exportService, logger)
	groupBookingHandler := NewGroupBookingHandler(groupBookingService, logger)
	receiptHandler := NewReceiptHandler(receiptService, logger)
	invoiceHandler := NewInvoiceHandler(invoiceService, logger)
	referenceHandler := NewReferenceHandler(referenceService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		authed := v1.Group("")
		authed.Use(middleware.Auth(authService))

		// Agency routes (platform administration)
		agencies := authed.Group("/agencies")
		agencies.Use(middleware.RequireRole(service.RoleSuperAdmin))
		{
			agencies.POST("", agencyHandler.CreateAgency)
			agencies.GET("", agencyHandler.ListAgencies)
			agencies.GET("/:id", agencyHandler.GetAgency)
			agencies.PUT("/:id", agencyHandler.UpdateAgency)
			agencies.DELETE("/:id", agencyHandler.DeleteAgency)
		}

		// Branch routes
		branches := authed.Group("/branches")
		{
			branches.POST("", branchHandler.CreateBranch)
			branches.GET("", branchHandler.ListBranches)
			branches.GET("/:id", branchHandler.GetBranch)
			branches.PUT("/:id", branchHandler.UpdateBranch)
			branches.DELETE("/:id", branchHandler.DeleteBranch)
		}

		// Staff user routes
		users := authed.Group("/users")
		users.Use(middleware.RequireRole(service.RoleSuperAdmin, service.RoleAdmin))
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Client routes with nested travel documents
		clients := authed.Group("/clients")
		{
			clients.POST("", clientHandler.CreateClient)
			clients.GET("", clientHandler.ListClients)
			clients.GET("/:id", clientHandler.GetClient)
			clients.PUT("/:id", clientHandler.UpdateClient)
			clients.DELETE("/:id", clientHandler.DeleteClient)

			clients.POST("/:id/travel-documents", clientHandler.CreateTravelDocument)
			clients.PUT("/:id/travel-documents/:document_id", clientHandler.UpdateTravelDocument)
			clients.DELETE("/:id/travel-documents/:document_id", clientHandler.DeleteTravelDocument)
		}

		// Tour routes
		tours := authed.Group("/tours")
		{
			tours.POST("", tourHandler.CreateTour)
			tours.GET("", tourHandler.ListTours)
			tours.GET("/:id", tourHandler.GetTour)
			tours.PUT("/:id", tourHandler.UpdateTour)
			tours.DELETE("/:id", tourHandler.DeleteTour)
		}

		// Booking routes with nested sub-bookings, receipts and invoices
		bookings := authed.Group("/bookings")
		{
			bookings.POST("", bookingHandler.CreateBooking)
			bookings.GET("", bookingHandler.ListBookings)
			bookings.GET("/statistics", bookingHandler.GetStatistics)
			bookings.GET("/export", bookingHandler.ExportBookings)
			bookings.GET("/:id", bookingHandler.GetBooking)
			bookings.PUT("/:id", bookingHandler.UpdateBooking)
			bookings.DELETE("/:id", bookingHandler.DeleteBooking)

			bookings.POST("/:id/vehicle-bookings", bookingHandler.CreateVehicleBooking)
			bookings.GET("/:id/vehicle-bookings", bookingHandler.ListVehicleBookings)
			bookings.PUT("/:id/vehicle-bookings/:vehicle_id", bookingHandler.UpdateVehicleBooking)
			bookings.DELETE("/:id/vehicle-bookings/:vehicle_id", bookingHandler.DeleteVehicleBooking)

			bookings.POST("/:id/hotel-bookings", bookingHandler.CreateHotelBooking)
			bookings.GET("/:id/hotel-bookings", bookingHandler.ListHotelBookings)
			bookings.PUT("/:id/hotel-bookings/:hotel_id", bookingHandler.UpdateHotelBooking)
			bookings.DELETE("/:id/hotel-bookings/:hotel_id", bookingHandler.DeleteHotelBooking)

			bookings.POST("/:id/receipts", receiptHandler.CreateReceipt)
			bookings.GET("/:id/receipts", receiptHandler.ListReceipts)
			bookings.GET("/:id/invoices", invoiceHandler.ListBookingInvoices)
		}

		// Group booking routes
		groupBookings := authed.Group("/group-bookings")
		{
			groupBookings.POST("", groupBookingHandler.CreateGroupBooking)
			groupBookings.GET("", groupBookingHandler.ListGroupBookings)
			groupBookings.GET("/:id", groupBookingHandler.GetGroupBooking)
			groupBookings.PUT("/:id", groupBookingHandler.UpdateGroupBooking)
			groupBookings.DELETE("/:id", groupBookingHandler.DeleteGroupBooking)
		}

		// Receipt routes
		receipts := authed.Group("/receipts")
		{
			receipts.GET("/:id", receiptHandler.GetReceipt)
			receipts.DELETE("/:id", receiptHandler.DeleteReceipt)
		}

		// Invoice routes
		invoices := authed.Group("/invoices")
		{
			invoices.POST("", invoiceHandler.CreateInvoice)
			invoices.GET("", invoiceHandler.ListInvoices)
			invoices.GET("/:id", invoiceHandler.GetInvoice)
			invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
		}

		// Reference data routes
		countries := authed.Group("/countries")
		{
			countries.POST("", referenceHandler.CreateCountry)
			countries.GET("", referenceHandler.ListCountries)
			countries.PUT("/:id", referenceHandler.UpdateCountry)
			countries.DELETE("/:id", referenceHandler.DeleteCountry)
		}
		states := authed.Group("/states")
		{
			states.POST("", referenceHandler.CreateState)
			states.GET("", referenceHandler.ListStates)
			states.PUT("/:id", referenceHandler.UpdateState)
			states.DELETE("/:id", referenceHandler.DeleteState)
		}
		cities := authed.Group("/cities")
		{
			cities.POST("", referenceHandler.CreateCity)
			cities.GET("", referenceHandler.ListCities)
			cities.PUT("/:id", referenceHandler.UpdateCity)
			cities.DELETE("/:id", referenceHandler.DeleteCity)
		}
		banks := authed.Group("/banks")
		{
			banks.POST("", referenceHandler.CreateBank)
			banks.GET("", referenceHandler.ListBanks)
			banks.PUT("/:id", referenceHandler.UpdateBank)
			banks.DELETE("/:id", referenceHandler.DeleteBank)
		}
		airlines := authed.Group("/airlines")
		{
			airlines.POST("", referenceHandler.CreateAirline)
			airlines.GET("", referenceHandler.ListAirlines)
			airlines.PUT("/:id", referenceHandler.UpdateAirline)
			airlines.DELETE("/:id", referenceHandler.DeleteAirline)
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Voyage Central API",
	})
}
