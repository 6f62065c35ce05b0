package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/service"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/upload"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/logger"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/utils"
)

// AgencyHandler handles agency HTTP requests
type AgencyHandler struct {
	agencyService service.AgencyService
	uploads       *upload.Manager
	logger        *logger.Logger
}

// NewAgencyHandler creates a new AgencyHandler instance
func NewAgencyHandler(agencyService service.AgencyService, uploads *upload.Manager, logger *logger.Logger) *AgencyHandler {
	return &AgencyHandler{
		agencyService: agencyService,
		uploads:       uploads,
		logger:        logger,
	}
}

func (h *AgencyHandler) bindInput(c *gin.Context) (*service.AgencyInput, error) {
	stateID, err := uintPtr(c, "state_id")
	if err != nil {
		return nil, err
	}
	cityID, err := uintPtr(c, "city_id")
	if err != nil {
		return nil, err
	}
	return &service.AgencyInput{
		BusinessName:       strPtr(c, "business_name"),
		AddressLine1:       strPtr(c, "address_line_1"),
		AddressLine2:       strPtr(c, "address_line_2"),
		StateID:            stateID,
		CityID:             cityID,
		Pincode:            strPtr(c, "pincode"),
		ContactPersonName:  strPtr(c, "contact_person_name"),
		ContactPersonEmail: strPtr(c, "contact_person_email"),
		ContactPersonPhone: strPtr(c, "contact_person_phone"),
		GSTIN:              strPtr(c, "gstin"),
	}, nil
}

// CreateAgency creates an agency with optional logo and letterhead uploads
// @Summary Create agency
// @Description Create an agency from a multipart form. Files may be sent under "logo" and "letterhead".
// @Tags agencies
// @Accept mpfd
// @Produce json
// @Param business_name formData string true "Business name"
// @Param contact_person_email formData string true "Contact person email"
// @Param logo formData file false "Logo image"
// @Param letterhead formData file false "Letterhead image"
// @Success 201 {object} utils.APIResponse{data=response.AgencyResponse} "Agency created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 409 {object} utils.APIResponse "Duplicate contact email"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/agencies [post]
func (h *AgencyHandler) CreateAgency(c *gin.Context) {
	input, err := h.bindInput(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}

	staging := h.uploads.NewStaging()
	defer staging.Cleanup()

	changes, err := collectFieldChanges(c, staging, service.AgencyUploadFields, imageContentTypes)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}

	agency, warnings, err := h.agencyService.CreateAgency(input, changes)
	if err != nil {
		respondServiceError(c, h.logger, err, "create agency")
		return
	}
	if len(warnings) > 0 {
		utils.SuccessResponseWithWarnings(c, "Agency created", agency, warnings)
		return
	}
	utils.CreatedResponse(c, "Agency created", agency)
}

// GetAgency retrieves one agency
// @Summary Get agency
// @Description Get an agency by id with public attachment URLs
// @Tags agencies
// @Produce json
// @Param id path int true "Agency ID"
// @Success 200 {object} utils.APIResponse{data=response.AgencyResponse} "Agency"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/agencies/{id} [get]
func (h *AgencyHandler) GetAgency(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid agency ID", err)
		return
	}
	agency, err := h.agencyService.GetAgency(id)
	if err != nil {
		respondServiceError(c, h.logger, err, "get agency")
		return
	}
	utils.SuccessResponse(c, "Agency retrieved", agency)
}

// ListAgencies retrieves agencies with pagination
// @Summary List agencies
// @Description List agencies with pagination and name search
// @Tags agencies
// @Produce json
// @Param search query string false "Search by business name"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} utils.PaginatedResponse "Agencies"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/agencies [get]
func (h *AgencyHandler) ListAgencies(c *gin.Context) {
	page, perPage := utils.GetPaginationParams(c)
	agencies, total, err := h.agencyService.ListAgencies(c.Query("search"), page, perPage)
	if err != nil {
		respondServiceError(c, h.logger, err, "list agencies")
		return
	}
	utils.PaginatedSuccessResponse(c, "Agencies retrieved", agencies, page, perPage, total)
}

// UpdateAgency updates an agency and reconciles its attachments
// @Summary Update agency
// @Description Update agency fields from a multipart form. A file part replaces that attachment; a "<field>_filename" value of "null" removes it.
// @Tags agencies
// @Accept mpfd
// @Produce json
// @Param id path int true "Agency ID"
// @Success 200 {object} utils.APIResponse{data=response.AgencyResponse} "Agency updated"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Failure 409 {object} utils.APIResponse "Duplicate contact email"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/agencies/{id} [put]
func (h *AgencyHandler) UpdateAgency(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid agency ID", err)
		return
	}
	input, err := h.bindInput(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}

	staging := h.uploads.NewStaging()
	defer staging.Cleanup()

	changes, err := collectFieldChanges(c, staging, service.AgencyUploadFields, imageContentTypes)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}

	agency, warnings, err := h.agencyService.UpdateAgency(id, input, changes)
	if err != nil {
		respondServiceError(c, h.logger, err, "update agency")
		return
	}
	if len(warnings) > 0 {
		utils.SuccessResponseWithWarnings(c, "Agency updated", agency, warnings)
		return
	}
	utils.SuccessResponse(c, "Agency updated", agency)
}

// DeleteAgency removes an agency and its stored files
// @Summary Delete agency
// @Description Delete an agency. Its attachment directories are removed after the database row.
// @Tags agencies
// @Produce json
// @Param id path int true "Agency ID"
// @Success 200 {object} utils.APIResponse "Agency deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/agencies/{id} [delete]
func (h *AgencyHandler) DeleteAgency(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid agency ID", err)
		return
	}
	warnings, err := h.agencyService.DeleteAgency(id)
	if err != nil {
		respondServiceError(c, h.logger, err, "delete agency")
		return
	}
	if len(warnings) > 0 {
		utils.SuccessResponseWithWarnings(c, "Agency deleted", nil, warnings)
		return
	}
	utils.SuccessResponse(c, "Agency deleted", nil)
}
