package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/middleware"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/repository"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/service"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/logger"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/utils"
)

// BookingRequest represents the booking create/update payload. Dates are
// YYYY-MM-DD strings.
type BookingRequest struct {
	BranchID               *uint            `json:"branch_id"`
	BookingDate            *string          `json:"booking_date"`
	DepartureDate          *string          `json:"departure_date"`
	ClientID               uint             `json:"client_id"`
	TourID                 *uint            `json:"tour_id"`
	NumberOfAdults         *int             `json:"number_of_adults"`
	NumberOfChildren5To11  *int             `json:"number_of_children_5_to_11"`
	NumberOfChildrenBelow5 *int             `json:"number_of_children_below_5"`
	TotalCost              *decimal.Decimal `json:"total_cost"`
	Status                 *string          `json:"status"`
	Remarks                *string          `json:"remarks"`
}

func (r *BookingRequest) toInput() (*service.BookingInput, error) {
	bookingDate, err := parseDate("booking_date", r.BookingDate)
	if err != nil {
		return nil, err
	}
	departureDate, err := parseDate("departure_date", r.DepartureDate)
	if err != nil {
		return nil, err
	}
	return &service.BookingInput{
		BranchID:               r.BranchID,
		BookingDate:            bookingDate,
		DepartureDate:          departureDate,
		ClientID:               r.ClientID,
		TourID:                 r.TourID,
		NumberOfAdults:         r.NumberOfAdults,
		NumberOfChildren5To11:  r.NumberOfChildren5To11,
		NumberOfChildrenBelow5: r.NumberOfChildrenBelow5,
		TotalCost:              r.TotalCost,
		Status:                 r.Status,
		Remarks:                r.Remarks,
	}, nil
}

// VehicleBookingRequest represents the vehicle sub-booking payload
type VehicleBookingRequest struct {
	VehicleType      *string          `json:"vehicle_type"`
	VendorName       *string          `json:"vendor_name"`
	PickupDate       *string          `json:"pickup_date"`
	ReturnDate       *string          `json:"return_date"`
	NumberOfVehicles *int             `json:"number_of_vehicles"`
	Cost             *decimal.Decimal `json:"cost"`
	Status           *string          `json:"status"`
}

func (r *VehicleBookingRequest) toInput() (*service.VehicleBookingInput, error) {
	pickup, err := parseDate("pickup_date", r.PickupDate)
	if err != nil {
		return nil, err
	}
	ret, err := parseDate("return_date", r.ReturnDate)
	if err != nil {
		return nil, err
	}
	return &service.VehicleBookingInput{
		VehicleType:      r.VehicleType,
		VendorName:       r.VendorName,
		PickupDate:       pickup,
		ReturnDate:       ret,
		NumberOfVehicles: r.NumberOfVehicles,
		Cost:             r.Cost,
		Status:           r.Status,
	}, nil
}

// HotelBookingRequest represents the hotel sub-booking payload
type HotelBookingRequest struct {
	HotelName     string           `json:"hotel_name"`
	CityID        *uint            `json:"city_id"`
	CheckInDate   *string          `json:"check_in_date"`
	CheckOutDate  *string          `json:"check_out_date"`
	NumberOfRooms *int             `json:"number_of_rooms"`
	Plan          *string          `json:"plan"`
	Cost          *decimal.Decimal `json:"cost"`
	Status        *string          `json:"status"`
}

func (r *HotelBookingRequest) toInput() (*service.HotelBookingInput, error) {
	checkIn, err := parseDate("check_in_date", r.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate("check_out_date", r.CheckOutDate)
	if err != nil {
		return nil, err
	}
	return &service.HotelBookingInput{
		HotelName:     r.HotelName,
		CityID:        r.CityID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		NumberOfRooms: r.NumberOfRooms,
		Plan:          r.Plan,
		Cost:          r.Cost,
		Status:        r.Status,
	}, nil
}

// BookingHandler handles booking HTTP requests, including vehicle and
// hotel sub-bookings, statistics and the Excel export
type BookingHandler struct {
	bookingService service.BookingService
	exportService  service.ExportService
	logger         *logger.Logger
}

// NewBookingHandler creates a new BookingHandler instance
func NewBookingHandler(bookingService service.BookingService, exportService service.ExportService, logger *logger.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		exportService:  exportService,
		logger:         logger,
	}
}

func bookingFilters(c *gin.Context) repository.BookingFilters {
	filters := repository.BookingFilters{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}
	if v := utils.GetIntQuery(c, "tour_id"); v != nil && *v > 0 {
		id := uint(*v)
		filters.TourID = &id
	}
	if v := utils.GetIntQuery(c, "client_id"); v != nil && *v > 0 {
		id := uint(*v)
		filters.ClientID = &id
	}
	if v := c.Query("from_date"); v != "" {
		if parsed, err := time.Parse("2006-01-02", v); err == nil {
			filters.FromDate = &parsed
		}
	}
	if v := c.Query("to_date"); v != "" {
		if parsed, err := time.Parse("2006-01-02", v); err == nil {
			filters.ToDate = &parsed
		}
	}
	return filters
}

// CreateBooking creates a booking with a generated booking number
// @Summary Create booking
// @Description Create a booking. The booking number is issued from the agency's fiscal year sequence inside the same transaction.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body BookingRequest true "Booking payload"
// @Success 201 {object} utils.APIResponse{data=models.Booking} "Booking created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	userID, _ := middleware.UserID(c)
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}
	booking, err := h.bookingService.CreateBooking(agencyID, userID, input)
	if err != nil {
		respondServiceError(c, h.logger, err, "create booking")
		return
	}
	utils.CreatedResponse(c, "Booking created", booking)
}

// GetBooking retrieves one booking with its sub-bookings
// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} utils.APIResponse{data=models.Booking} "Booking"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID", err)
		return
	}
	booking, err := h.bookingService.GetBooking(agencyID, id)
	if err != nil {
		respondServiceError(c, h.logger, err, "get booking")
		return
	}
	utils.SuccessResponse(c, "Booking retrieved", booking)
}

// ListBookings retrieves bookings with pagination and filters
// @Summary List bookings
// @Tags bookings
// @Produce json
// @Param search query string false "Search by booking number"
// @Param status query string false "Filter by status"
// @Param tour_id query int false "Filter by tour"
// @Param client_id query int false "Filter by client"
// @Param from_date query string false "Booking date lower bound (YYYY-MM-DD)"
// @Param to_date query string false "Booking date upper bound (YYYY-MM-DD)"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} utils.PaginatedResponse "Bookings"
// @Router /api/v1/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	page, perPage := utils.GetPaginationParams(c)
	bookings, total, err := h.bookingService.ListBookings(agencyID, bookingFilters(c), page, perPage)
	if err != nil {
		respondServiceError(c, h.logger, err, "list bookings")
		return
	}
	utils.PaginatedSuccessResponse(c, "Bookings retrieved", bookings, page, perPage, total)
}

// UpdateBooking updates a booking; the booking number never changes
// @Summary Update booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body BookingRequest true "Booking payload"
// @Success 200 {object} utils.APIResponse{data=models.Booking} "Booking updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/bookings/{id} [put]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID", err)
		return
	}
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}
	booking, err := h.bookingService.UpdateBooking(agencyID, id, input)
	if err != nil {
		respondServiceError(c, h.logger, err, "update booking")
		return
	}
	utils.SuccessResponse(c, "Booking updated", booking)
}

// DeleteBooking removes a booking
// @Summary Delete booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} utils.APIResponse "Booking deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID", err)
		return
	}
	if err := h.bookingService.DeleteBooking(agencyID, id); err != nil {
		respondServiceError(c, h.logger, err, "delete booking")
		return
	}
	utils.SuccessResponse(c, "Booking deleted", nil)
}

// GetStatistics aggregates bookings by status
// @Summary Booking statistics
// @Description Count and sum bookings grouped by status for the authenticated agency
// @Tags bookings
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.BookingStatisticsResponse} "Statistics"
// @Router /api/v1/bookings/statistics [get]
func (h *BookingHandler) GetStatistics(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	stats, err := h.bookingService.GetStatistics(agencyID)
	if err != nil {
		respondServiceError(c, h.logger, err, "get booking statistics")
		return
	}
	utils.SuccessResponse(c, "Booking statistics retrieved", stats)
}

// ExportBookings downloads the agency's bookings as an Excel workbook
// @Summary Export bookings to Excel
// @Description Download filtered bookings as an .xlsx workbook
// @Tags bookings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Filter by status"
// @Param from_date query string false "Booking date lower bound (YYYY-MM-DD)"
// @Param to_date query string false "Booking date upper bound (YYYY-MM-DD)"
// @Success 200 {file} binary "Excel file"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bookings/export [get]
func (h *BookingHandler) ExportBookings(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	data, filename, err := h.exportService.ExportBookingsToExcel(agencyID, bookingFilters(c))
	if err != nil {
		respondServiceError(c, h.logger, err, "export bookings")
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// CreateVehicleBooking adds a vehicle sub-booking with a hire voucher
// number
// @Summary Create vehicle booking
// @Description Add a vehicle sub-booking. The hire voucher number is issued from the agency's fiscal year sequence.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body VehicleBookingRequest true "Vehicle booking payload"
// @Success 201 {object} utils.APIResponse{data=models.VehicleBooking} "Vehicle booking created"
// @Failure 404 {object} utils.APIResponse "Booking not found"
// @Router /api/v1/bookings/{id}/vehicle-bookings [post]
func (h *BookingHandler) CreateVehicleBooking(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	bookingID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID", err)
		return
	}
	var req VehicleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}
	vb, err := h.bookingService.CreateVehicleBooking(agencyID, bookingID, input)
	if err != nil {
		respondServiceError(c, h.logger, err, "create vehicle booking")
		return
	}
	utils.CreatedResponse(c, "Vehicle booking created", vb)
}

// ListVehicleBookings lists a booking's vehicle sub-bookings
// @Summary List vehicle bookings
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} utils.APIResponse{data=[]models.VehicleBooking} "Vehicle bookings"
// @Router /api/v1/bookings/{id}/vehicle-bookings [get]
func (h *BookingHandler) ListVehicleBookings(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	bookingID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID", err)
		return
	}
	vbs, err := h.bookingService.ListVehicleBookings(agencyID, bookingID)
	if err != nil {
		respondServiceError(c, h.logger, err, "list vehicle bookings")
		return
	}
	utils.SuccessResponse(c, "Vehicle bookings retrieved", vbs)
}

// UpdateVehicleBooking updates a vehicle sub-booking; the voucher number
// never changes
// @Summary Update vehicle booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param vehicle_id path int true "Vehicle booking ID"
// @Param request body VehicleBookingRequest true "Vehicle booking payload"
// @Success 200 {object} utils.APIResponse{data=models.VehicleBooking} "Vehicle booking updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/bookings/{id}/vehicle-bookings/{vehicle_id} [put]
func (h *BookingHandler) UpdateVehicleBooking(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	bookingID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID", err)
		return
	}
	vehicleID, err := utils.GetUintParam(c, "vehicle_id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle booking ID", err)
		return
	}
	var req VehicleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}
	vb, err := h.bookingService.UpdateVehicleBooking(agencyID, bookingID, vehicleID, input)
	if err != nil {
		respondServiceError(c, h.logger, err, "update vehicle booking")
		return
	}
	utils.SuccessResponse(c, "Vehicle booking updated", vb)
}

// DeleteVehicleBooking removes a vehicle sub-booking
// @Summary Delete vehicle booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Param vehicle_id path int true "Vehicle booking ID"
// @Success 200 {object} utils.APIResponse "Vehicle booking deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/bookings/{id}/vehicle-bookings/{vehicle_id} [delete]
func (h *BookingHandler) DeleteVehicleBooking(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	bookingID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID", err)
		return
	}
	vehicleID, err := utils.GetUintParam(c, "vehicle_id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle booking ID", err)
		return
	}
	if err := h.bookingService.DeleteVehicleBooking(agencyID, bookingID, vehicleID); err != nil {
		respondServiceError(c, h.logger, err, "delete vehicle booking")
		return
	}
	utils.SuccessResponse(c, "Vehicle booking deleted", nil)
}

// CreateHotelBooking adds a hotel sub-booking
// @Summary Create hotel booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body HotelBookingRequest true "Hotel booking payload"
// @Success 201 {object} utils.APIResponse{data=models.HotelBooking} "Hotel booking created"
// @Failure 404 {object} utils.APIResponse "Booking not found"
// @Router /api/v1/bookings/{id}/hotel-bookings [post]
func (h *BookingHandler) CreateHotelBooking(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	bookingID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID", err)
		return
	}
	var req HotelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}
	hb, err := h.bookingService.CreateHotelBooking(agencyID, bookingID, input)
	if err != nil {
		respondServiceError(c, h.logger, err, "create hotel booking")
		return
	}
	utils.CreatedResponse(c, "Hotel booking created", hb)
}

// ListHotelBookings lists a booking's hotel sub-bookings
// @Summary List hotel bookings
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} utils.APIResponse{data=[]models.HotelBooking} "Hotel bookings"
// @Router /api/v1/bookings/{id}/hotel-bookings [get]
func (h *BookingHandler) ListHotelBookings(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	bookingID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID", err)
		return
	}
	hbs, err := h.bookingService.ListHotelBookings(agencyID, bookingID)
	if err != nil {
		respondServiceError(c, h.logger, err, "list hotel bookings")
		return
	}
	utils.SuccessResponse(c, "Hotel bookings retrieved", hbs)
}

// UpdateHotelBooking updates a hotel sub-booking
// @Summary Update hotel booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param hotel_id path int true "Hotel booking ID"
// @Param request body HotelBookingRequest true "Hotel booking payload"
// @Success 200 {object} utils.APIResponse{data=models.HotelBooking} "Hotel booking updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/bookings/{id}/hotel-bookings/{hotel_id} [put]
func (h *BookingHandler) UpdateHotelBooking(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	bookingID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID", err)
		return
	}
	hotelID, err := utils.GetUintParam(c, "hotel_id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid hotel booking ID", err)
		return
	}
	var req HotelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}
	hb, err := h.bookingService.UpdateHotelBooking(agencyID, bookingID, hotelID, input)
	if err != nil {
		respondServiceError(c, h.logger, err, "update hotel booking")
		return
	}
	utils.SuccessResponse(c, "Hotel booking updated", hb)
}

// DeleteHotelBooking removes a hotel sub-booking
// @Summary Delete hotel booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Param hotel_id path int true "Hotel booking ID"
// @Success 200 {object} utils.APIResponse "Hotel booking deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/bookings/{id}/hotel-bookings/{hotel_id} [delete]
func (h *BookingHandler) DeleteHotelBooking(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	bookingID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID", err)
		return
	}
	hotelID, err := utils.GetUintParam(c, "hotel_id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid hotel booking ID", err)
		return
	}
	if err := h.bookingService.DeleteHotelBooking(agencyID, bookingID, hotelID); err != nil {
		respondServiceError(c, h.logger, err, "delete hotel booking")
		return
	}
	utils.SuccessResponse(c, "Hotel booking deleted", nil)
}
