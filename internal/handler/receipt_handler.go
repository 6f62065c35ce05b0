package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/middleware"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/service"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/logger"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/utils"
)

// ReceiptRequest represents the booking receipt payload
type ReceiptRequest struct {
	ReceiptDate  *string         `json:"receipt_date"`
	PaymentMode  string          `json:"payment_mode" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	BankID       *uint           `json:"bank_id"`
	ChequeNumber *string         `json:"cheque_number"`
	ChequeDate   *string         `json:"cheque_date"`
	UTRNumber    *string         `json:"utr_number"`
	Description  *string         `json:"description"`
}

func (r *ReceiptRequest) toInput() (*service.ReceiptInput, error) {
	receiptDate, err := parseDate("receipt_date", r.ReceiptDate)
	if err != nil {
		return nil, err
	}
	chequeDate, err := parseDate("cheque_date", r.ChequeDate)
	if err != nil {
		return nil, err
	}
	return &service.ReceiptInput{
		ReceiptDate:  receiptDate,
		PaymentMode:  r.PaymentMode,
		Amount:       r.Amount,
		BankID:       r.BankID,
		ChequeNumber: r.ChequeNumber,
		ChequeDate:   chequeDate,
		UTRNumber:    r.UTRNumber,
		Description:  r.Description,
	}, nil
}

// ReceiptHandler handles booking receipt HTTP requests
type ReceiptHandler struct {
	receiptService service.ReceiptService
	logger         *logger.Logger
}

// NewReceiptHandler creates a new ReceiptHandler instance
func NewReceiptHandler(receiptService service.ReceiptService, logger *logger.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		logger:         logger,
	}
}

// CreateReceipt records a payment against a booking
// @Summary Create booking receipt
// @Description Record a payment against a booking. The receipt number is issued from the agency's fiscal year sequence.
// @Tags receipts
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body ReceiptRequest true "Receipt payload"
// @Success 201 {object} utils.APIResponse{data=models.BookingReceipt} "Receipt created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Booking not found"
// @Router /api/v1/bookings/{id}/receipts [post]
func (h *ReceiptHandler) CreateReceipt(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	userID, _ := middleware.UserID(c)
	bookingID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID", err)
		return
	}
	var req ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}
	receipt, err := h.receiptService.CreateReceipt(agencyID, userID, bookingID, input)
	if err != nil {
		respondServiceError(c, h.logger, err, "create receipt")
		return
	}
	utils.CreatedResponse(c, "Receipt created", receipt)
}

// ListReceipts lists a booking's receipts
// @Summary List booking receipts
// @Tags receipts
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} utils.APIResponse{data=[]models.BookingReceipt} "Receipts"
// @Failure 404 {object} utils.APIResponse "Booking not found"
// @Router /api/v1/bookings/{id}/receipts [get]
func (h *ReceiptHandler) ListReceipts(c *gin.Context) {
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
	receipts, err := h.receiptService.ListReceiptsByBooking(agencyID, bookingID)
	if err != nil {
		respondServiceError(c, h.logger, err, "list receipts")
		return
	}
	utils.SuccessResponse(c, "Receipts retrieved", receipts)
}

// GetReceipt retrieves one receipt
// @Summary Get receipt
// @Tags receipts
// @Produce json
// @Param id path int true "Receipt ID"
// @Success 200 {object} utils.APIResponse{data=models.BookingReceipt} "Receipt"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/receipts/{id} [get]
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid receipt ID", err)
		return
	}
	receipt, err := h.receiptService.GetReceipt(agencyID, id)
	if err != nil {
		respondServiceError(c, h.logger, err, "get receipt")
		return
	}
	utils.SuccessResponse(c, "Receipt retrieved", receipt)
}

// DeleteReceipt removes a receipt
// @Summary Delete receipt
// @Tags receipts
// @Produce json
// @Param id path int true "Receipt ID"
// @Success 200 {object} utils.APIResponse "Receipt deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/receipts/{id} [delete]
func (h *ReceiptHandler) DeleteReceipt(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid receipt ID", err)
		return
	}
	if err := h.receiptService.DeleteReceipt(agencyID, id); err != nil {
		respondServiceError(c, h.logger, err, "delete receipt")
		return
	}
	utils.SuccessResponse(c, "Receipt deleted", nil)
}
