package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/middleware"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/service"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/upload"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/logger"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/utils"
)

// TourHandler handles tour HTTP requests
type TourHandler struct {
	tourService service.TourService
	uploads     *upload.Manager
	logger      *logger.Logger
}

// NewTourHandler creates a new TourHandler instance
func NewTourHandler(tourService service.TourService, uploads *upload.Manager, logger *logger.Logger) *TourHandler {
	return &TourHandler{
		tourService: tourService,
		uploads:     uploads,
		logger:      logger,
	}
}

func (h *TourHandler) bindInput(c *gin.Context) (*service.TourInput, error) {
	days, err := intPtr(c, "number_of_days")
	if err != nil {
		return nil, err
	}
	travelers, err := intPtr(c, "number_of_travelers")
	if err != nil {
		return nil, err
	}
	price, err := decimalPtr(c, "price_per_person")
	if err != nil {
		return nil, err
	}
	return &service.TourInput{
		TourTitle:         strPtr(c, "tour_title"),
		Destination:       strPtr(c, "destination"),
		NumberOfDays:      days,
		NumberOfTravelers: travelers,
		PricePerPerson:    price,
		Status:            strPtr(c, "status"),
		Notes:             strPtr(c, "notes"),
	}, nil
}

// CreateTour creates a tour with an optional itinerary attachment
// @Summary Create tour
// @Description Create a tour from a multipart form. The itinerary file may be sent under "attachment".
// @Tags tours
// @Accept mpfd
// @Produce json
// @Param tour_title formData string true "Tour title"
// @Param attachment formData file false "Itinerary document"
// @Success 201 {object} utils.APIResponse{data=response.TourResponse} "Tour created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/tours [post]
func (h *TourHandler) CreateTour(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	input, err := h.bindInput(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}

	staging := h.uploads.NewStaging()
	defer staging.Cleanup()

	changes, err := collectFieldChanges(c, staging, service.TourUploadFields, documentContentTypes)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}

	tour, warnings, err := h.tourService.CreateTour(agencyID, input, changes)
	if err != nil {
		respondServiceError(c, h.logger, err, "create tour")
		return
	}
	if len(warnings) > 0 {
		utils.SuccessResponseWithWarnings(c, "Tour created", tour, warnings)
		return
	}
	utils.CreatedResponse(c, "Tour created", tour)
}

// GetTour retrieves one tour
// @Summary Get tour
// @Description Get a tour by id with its public attachment URL
// @Tags tours
// @Produce json
// @Param id path int true "Tour ID"
// @Success 200 {object} utils.APIResponse{data=response.TourResponse} "Tour"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/tours/{id} [get]
func (h *TourHandler) GetTour(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid tour ID", err)
		return
	}
	tour, err := h.tourService.GetTour(agencyID, id)
	if err != nil {
		respondServiceError(c, h.logger, err, "get tour")
		return
	}
	utils.SuccessResponse(c, "Tour retrieved", tour)
}

// ListTours retrieves tours with pagination
// @Summary List tours
// @Description List tours with pagination, title search and status filter
// @Tags tours
// @Produce json
// @Param search query string false "Search by title"
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} utils.PaginatedResponse "Tours"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/tours [get]
func (h *TourHandler) ListTours(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	page, perPage := utils.GetPaginationParams(c)
	tours, total, err := h.tourService.ListTours(agencyID, c.Query("search"), c.Query("status"), page, perPage)
	if err != nil {
		respondServiceError(c, h.logger, err, "list tours")
		return
	}
	utils.PaginatedSuccessResponse(c, "Tours retrieved", tours, page, perPage, total)
}

// UpdateTour updates a tour and reconciles its attachment
// @Summary Update tour
// @Description Update tour fields from a multipart form. A file part replaces the attachment; "attachment_filename" set to "null" removes it.
// @Tags tours
// @Accept mpfd
// @Produce json
// @Param id path int true "Tour ID"
// @Success 200 {object} utils.APIResponse{data=response.TourResponse} "Tour updated"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/tours/{id} [put]
func (h *TourHandler) UpdateTour(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid tour ID", err)
		return
	}
	input, err := h.bindInput(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}

	staging := h.uploads.NewStaging()
	defer staging.Cleanup()

	changes, err := collectFieldChanges(c, staging, service.TourUploadFields, documentContentTypes)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}

	tour, warnings, err := h.tourService.UpdateTour(agencyID, id, input, changes)
	if err != nil {
		respondServiceError(c, h.logger, err, "update tour")
		return
	}
	if len(warnings) > 0 {
		utils.SuccessResponseWithWarnings(c, "Tour updated", tour, warnings)
		return
	}
	utils.SuccessResponse(c, "Tour updated", tour)
}

// DeleteTour removes a tour and its stored attachment
// @Summary Delete tour
// @Description Delete a tour. Its attachment directory is removed after the database row.
// @Tags tours
// @Produce json
// @Param id path int true "Tour ID"
// @Success 200 {object} utils.APIResponse "Tour deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/tours/{id} [delete]
func (h *TourHandler) DeleteTour(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid tour ID", err)
		return
	}
	warnings, err := h.tourService.DeleteTour(agencyID, id)
	if err != nil {
		respondServiceError(c, h.logger, err, "delete tour")
		return
	}
	if len(warnings) > 0 {
		utils.SuccessResponseWithWarnings(c, "Tour deleted", nil, warnings)
		return
	}
	utils.SuccessResponse(c, "Tour deleted", nil)
}
