package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/middleware"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/service"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/logger"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/utils"
)

// GroupBookingRequest represents the group booking payload
type GroupBookingRequest struct {
	BranchID               *uint            `json:"branch_id"`
	GroupName              *string          `json:"group_name"`
	BookingDate            *string          `json:"booking_date"`
	TourID                 *uint            `json:"tour_id"`
	NumberOfAdults         *int             `json:"number_of_adults"`
	NumberOfChildren5To11  *int             `json:"number_of_children_5_to_11"`
	NumberOfChildrenBelow5 *int             `json:"number_of_children_below_5"`
	TotalCost              *decimal.Decimal `json:"total_cost"`
	Status                 *string          `json:"status"`
	Remarks                *string          `json:"remarks"`
}

func (r *GroupBookingRequest) toInput() (*service.GroupBookingInput, error) {
	bookingDate, err := parseDate("booking_date", r.BookingDate)
	if err != nil {
		return nil, err
	}
	return &service.GroupBookingInput{
		BranchID:               r.BranchID,
		GroupName:              r.GroupName,
		BookingDate:            bookingDate,
		TourID:                 r.TourID,
		NumberOfAdults:         r.NumberOfAdults,
		NumberOfChildren5To11:  r.NumberOfChildren5To11,
		NumberOfChildrenBelow5: r.NumberOfChildrenBelow5,
		TotalCost:              r.TotalCost,
		Status:                 r.Status,
		Remarks:                r.Remarks,
	}, nil
}

// GroupBookingHandler handles group booking HTTP requests
type GroupBookingHandler struct {
	groupService service.GroupBookingService
	logger       *logger.Logger
}

// NewGroupBookingHandler creates a new GroupBookingHandler instance
func NewGroupBookingHandler(groupService service.GroupBookingService, logger *logger.Logger) *GroupBookingHandler {
	return &GroupBookingHandler{
		groupService: groupService,
		logger:       logger,
	}
}

// CreateGroupBooking creates a group booking with a generated number
// @Summary Create group booking
// @Description Create a group booking. Its number is issued from the agency's fiscal year sequence inside the same transaction.
// @Tags group-bookings
// @Accept json
// @Produce json
// @Param request body GroupBookingRequest true "Group booking payload"
// @Success 201 {object} utils.APIResponse{data=models.GroupBooking} "Group booking created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Router /api/v1/group-bookings [post]
func (h *GroupBookingHandler) CreateGroupBooking(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	userID, _ := middleware.UserID(c)
	var req GroupBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}
	gb, err := h.groupService.CreateGroupBooking(agencyID, userID, input)
	if err != nil {
		respondServiceError(c, h.logger, err, "create group booking")
		return
	}
	utils.CreatedResponse(c, "Group booking created", gb)
}

// GetGroupBooking retrieves one group booking
// @Summary Get group booking
// @Tags group-bookings
// @Produce json
// @Param id path int true "Group booking ID"
// @Success 200 {object} utils.APIResponse{data=models.GroupBooking} "Group booking"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/group-bookings/{id} [get]
func (h *GroupBookingHandler) GetGroupBooking(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid group booking ID", err)
		return
	}
	gb, err := h.groupService.GetGroupBooking(agencyID, id)
	if err != nil {
		respondServiceError(c, h.logger, err, "get group booking")
		return
	}
	utils.SuccessResponse(c, "Group booking retrieved", gb)
}

// ListGroupBookings retrieves group bookings with pagination
// @Summary List group bookings
// @Tags group-bookings
// @Produce json
// @Param search query string false "Search by group name or number"
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} utils.PaginatedResponse "Group bookings"
// @Router /api/v1/group-bookings [get]
func (h *GroupBookingHandler) ListGroupBookings(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	page, perPage := utils.GetPaginationParams(c)
	gbs, total, err := h.groupService.ListGroupBookings(agencyID, c.Query("search"), c.Query("status"), page, perPage)
	if err != nil {
		respondServiceError(c, h.logger, err, "list group bookings")
		return
	}
	utils.PaginatedSuccessResponse(c, "Group bookings retrieved", gbs, page, perPage, total)
}

// UpdateGroupBooking updates a group booking; its number never changes
// @Summary Update group booking
// @Tags group-bookings
// @Accept json
// @Produce json
// @Param id path int true "Group booking ID"
// @Param request body GroupBookingRequest true "Group booking payload"
// @Success 200 {object} utils.APIResponse{data=models.GroupBooking} "Group booking updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/group-bookings/{id} [put]
func (h *GroupBookingHandler) UpdateGroupBooking(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid group booking ID", err)
		return
	}
	var req GroupBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}
	gb, err := h.groupService.UpdateGroupBooking(agencyID, id, input)
	if err != nil {
		respondServiceError(c, h.logger, err, "update group booking")
		return
	}
	utils.SuccessResponse(c, "Group booking updated", gb)
}

// DeleteGroupBooking removes a group booking
// @Summary Delete group booking
// @Tags group-bookings
// @Produce json
// @Param id path int true "Group booking ID"
// @Success 200 {object} utils.APIResponse "Group booking deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/group-bookings/{id} [delete]
func (h *GroupBookingHandler) DeleteGroupBooking(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid group booking ID", err)
		return
	}
	if err := h.groupService.DeleteGroupBooking(agencyID, id); err != nil {
		respondServiceError(c, h.logger, err, "delete group booking")
		return
	}
	utils.SuccessResponse(c, "Group booking deleted", nil)
}
