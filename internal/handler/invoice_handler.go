package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/middleware"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/service"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/logger"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/utils"
)

// InvoiceRequest represents the invoice payload. Exactly one of
// booking_id and group_booking_id must be set.
type InvoiceRequest struct {
	BookingID      *uint           `json:"booking_id"`
	GroupBookingID *uint           `json:"group_booking_id"`
	InvoiceDate    *string         `json:"invoice_date"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Description    *string         `json:"description"`
}

func (r *InvoiceRequest) toInput() (*service.InvoiceInput, error) {
	invoiceDate, err := parseDate("invoice_date", r.InvoiceDate)
	if err != nil {
		return nil, err
	}
	return &service.InvoiceInput{
		BookingID:      r.BookingID,
		GroupBookingID: r.GroupBookingID,
		InvoiceDate:    invoiceDate,
		Amount:         r.Amount,
		TaxAmount:      r.TaxAmount,
		Description:    r.Description,
	}, nil
}

// InvoiceHandler handles invoice HTTP requests
type InvoiceHandler struct {
	invoiceService service.InvoiceService
	logger         *logger.Logger
}

// NewInvoiceHandler creates a new InvoiceHandler instance
func NewInvoiceHandler(invoiceService service.InvoiceService, logger *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// CreateInvoice creates an invoice for a booking or group booking
// @Summary Create invoice
// @Description Create an invoice against a booking or a group booking. The invoice number is issued from the agency's fiscal year sequence.
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body InvoiceRequest true "Invoice payload"
// @Success 201 {object} utils.APIResponse{data=models.Invoice} "Invoice created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Booking not found"
// @Router /api/v1/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	userID, _ := middleware.UserID(c)
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}
	invoice, err := h.invoiceService.CreateInvoice(agencyID, userID, input)
	if err != nil {
		respondServiceError(c, h.logger, err, "create invoice")
		return
	}
	utils.CreatedResponse(c, "Invoice created", invoice)
}

// GetInvoice retrieves one invoice
// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} utils.APIResponse{data=models.Invoice} "Invoice"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid invoice ID", err)
		return
	}
	invoice, err := h.invoiceService.GetInvoice(agencyID, id)
	if err != nil {
		respondServiceError(c, h.logger, err, "get invoice")
		return
	}
	utils.SuccessResponse(c, "Invoice retrieved", invoice)
}

// ListInvoices retrieves invoices with pagination
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param search query string false "Search by invoice number"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} utils.PaginatedResponse "Invoices"
// @Router /api/v1/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	page, perPage := utils.GetPaginationParams(c)
	invoices, total, err := h.invoiceService.ListInvoices(agencyID, c.Query("search"), page, perPage)
	if err != nil {
		respondServiceError(c, h.logger, err, "list invoices")
		return
	}
	utils.PaginatedSuccessResponse(c, "Invoices retrieved", invoices, page, perPage, total)
}

// ListBookingInvoices lists invoices raised against one booking
// @Summary List booking invoices
// @Tags invoices
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} utils.APIResponse{data=[]models.Invoice} "Invoices"
// @Failure 404 {object} utils.APIResponse "Booking not found"
// @Router /api/v1/bookings/{id}/invoices [get]
func (h *InvoiceHandler) ListBookingInvoices(c *gin.Context) {
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
	invoices, err := h.invoiceService.ListInvoicesByBooking(agencyID, bookingID)
	if err != nil {
		respondServiceError(c, h.logger, err, "list booking invoices")
		return
	}
	utils.SuccessResponse(c, "Invoices retrieved", invoices)
}

// DeleteInvoice removes an invoice
// @Summary Delete invoice
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} utils.APIResponse "Invoice deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid invoice ID", err)
		return
	}
	if err := h.invoiceService.DeleteInvoice(agencyID, id); err != nil {
		respondServiceError(c, h.logger, err, "delete invoice")
		return
	}
	utils.SuccessResponse(c, "Invoice deleted", nil)
}
