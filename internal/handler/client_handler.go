package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/middleware"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/service"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/upload"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/logger"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/utils"
)

// ClientRequest represents the client create/update payload. Dates are
// YYYY-MM-DD strings.
type ClientRequest struct {
	Name           *string `json:"name"`
	Gender         *string `json:"gender"`
	Email          *string `json:"email"`
	Mobile         *string `json:"mobile"`
	DateOfBirth    *string `json:"date_of_birth"`
	MaritalStatus  *string `json:"marital_status"`
	AddressLine1   *string `json:"address_line_1"`
	StateID        *uint   `json:"state_id"`
	CityID         *uint   `json:"city_id"`
	Pincode        *string `json:"pincode"`
	PassportNumber *string `json:"passport_number"`
	PanNumber      *string `json:"pan_number"`
}

func parseDate(key string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, fmt.Errorf("%s must be a date in YYYY-MM-DD format", key)
	}
	return &parsed, nil
}

func (r *ClientRequest) toInput() (*service.ClientInput, error) {
	dob, err := parseDate("date_of_birth", r.DateOfBirth)
	if err != nil {
		return nil, err
	}
	return &service.ClientInput{
		Name:           r.Name,
		Gender:         r.Gender,
		Email:          r.Email,
		Mobile:         r.Mobile,
		DateOfBirth:    dob,
		MaritalStatus:  r.MaritalStatus,
		AddressLine1:   r.AddressLine1,
		StateID:        r.StateID,
		CityID:         r.CityID,
		Pincode:        r.Pincode,
		PassportNumber: r.PassportNumber,
		PanNumber:      r.PanNumber,
	}, nil
}

// TravelDocumentResponse decorates a travel document with its scan URL
type TravelDocumentResponse struct {
	*models.TravelDocument
	ScanURL *string `json:"scan_url"`
}

// ClientHandler handles client and travel document HTTP requests
type ClientHandler struct {
	clientService service.ClientService
	uploads       *upload.Manager
	logger        *logger.Logger
}

// NewClientHandler creates a new ClientHandler instance
func NewClientHandler(clientService service.ClientService, uploads *upload.Manager, logger *logger.Logger) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		uploads:       uploads,
		logger:        logger,
	}
}

func (h *ClientHandler) toDocumentResponse(doc *models.TravelDocument) *TravelDocumentResponse {
	return &TravelDocumentResponse{TravelDocument: doc, ScanURL: h.clientService.ScanURL(doc)}
}

// CreateClient creates a client
// @Summary Create client
// @Tags clients
// @Accept json
// @Produce json
// @Param request body ClientRequest true "Client payload"
// @Success 201 {object} utils.APIResponse{data=models.Client} "Client created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Router /api/v1/clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}
	client, err := h.clientService.CreateClient(agencyID, input)
	if err != nil {
		respondServiceError(c, h.logger, err, "create client")
		return
	}
	utils.CreatedResponse(c, "Client created", client)
}

// GetClient retrieves one client with travel documents
// @Summary Get client
// @Tags clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} utils.APIResponse{data=models.Client} "Client"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid client ID", err)
		return
	}
	client, err := h.clientService.GetClient(agencyID, id)
	if err != nil {
		respondServiceError(c, h.logger, err, "get client")
		return
	}
	utils.SuccessResponse(c, "Client retrieved", client)
}

// ListClients retrieves clients with pagination
// @Summary List clients
// @Tags clients
// @Produce json
// @Param search query string false "Search by name, email or mobile"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} utils.PaginatedResponse "Clients"
// @Router /api/v1/clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	page, perPage := utils.GetPaginationParams(c)
	clients, total, err := h.clientService.ListClients(agencyID, c.Query("search"), page, perPage)
	if err != nil {
		respondServiceError(c, h.logger, err, "list clients")
		return
	}
	utils.PaginatedSuccessResponse(c, "Clients retrieved", clients, page, perPage, total)
}

// UpdateClient updates a client
// @Summary Update client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param request body ClientRequest true "Client payload"
// @Success 200 {object} utils.APIResponse{data=models.Client} "Client updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid client ID", err)
		return
	}
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}
	client, err := h.clientService.UpdateClient(agencyID, id, input)
	if err != nil {
		respondServiceError(c, h.logger, err, "update client")
		return
	}
	utils.SuccessResponse(c, "Client updated", client)
}

// DeleteClient removes a client and its travel document scans
// @Summary Delete client
// @Tags clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} utils.APIResponse "Client deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid client ID", err)
		return
	}
	warnings, err := h.clientService.DeleteClient(agencyID, id)
	if err != nil {
		respondServiceError(c, h.logger, err, "delete client")
		return
	}
	if len(warnings) > 0 {
		utils.SuccessResponseWithWarnings(c, "Client deleted", nil, warnings)
		return
	}
	utils.SuccessResponse(c, "Client deleted", nil)
}

func (h *ClientHandler) bindDocumentInput(c *gin.Context) (*service.TravelDocumentInput, error) {
	issueDate, err := timePtr(c, "issue_date")
	if err != nil {
		return nil, err
	}
	expiryDate, err := timePtr(c, "expiry_date")
	if err != nil {
		return nil, err
	}
	return &service.TravelDocumentInput{
		DocumentType:   strPtr(c, "document_type"),
		DocumentNumber: strPtr(c, "document_number"),
		IssueDate:      issueDate,
		ExpiryDate:     expiryDate,
	}, nil
}

// CreateTravelDocument adds a travel document with an optional scan
// @Summary Create travel document
// @Description Create a travel document for a client from a multipart form. The scan file may be sent under "scan".
// @Tags clients
// @Accept mpfd
// @Produce json
// @Param id path int true "Client ID"
// @Param document_type formData string true "Document type"
// @Param scan formData file false "Document scan"
// @Success 201 {object} utils.APIResponse{data=TravelDocumentResponse} "Travel document created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 404 {object} utils.APIResponse "Client not found"
// @Router /api/v1/clients/{id}/travel-documents [post]
func (h *ClientHandler) CreateTravelDocument(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	clientID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid client ID", err)
		return
	}
	input, err := h.bindDocumentInput(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}

	staging := h.uploads.NewStaging()
	defer staging.Cleanup()

	changes, err := collectFieldChanges(c, staging, service.TravelDocumentUploadFields, documentContentTypes)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}

	doc, warnings, err := h.clientService.CreateTravelDocument(agencyID, clientID, input, changes)
	if err != nil {
		respondServiceError(c, h.logger, err, "create travel document")
		return
	}
	if len(warnings) > 0 {
		utils.SuccessResponseWithWarnings(c, "Travel document created", h.toDocumentResponse(doc), warnings)
		return
	}
	utils.CreatedResponse(c, "Travel document created", h.toDocumentResponse(doc))
}

// UpdateTravelDocument updates a travel document and reconciles its scan
// @Summary Update travel document
// @Description Update a travel document from a multipart form. A file part replaces the scan; "scan_filename" set to "null" removes it.
// @Tags clients
// @Accept mpfd
// @Produce json
// @Param id path int true "Client ID"
// @Param document_id path int true "Travel document ID"
// @Success 200 {object} utils.APIResponse{data=TravelDocumentResponse} "Travel document updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/clients/{id}/travel-documents/{document_id} [put]
func (h *ClientHandler) UpdateTravelDocument(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	clientID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid client ID", err)
		return
	}
	docID, err := utils.GetUintParam(c, "document_id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid travel document ID", err)
		return
	}
	input, err := h.bindDocumentInput(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}

	staging := h.uploads.NewStaging()
	defer staging.Cleanup()

	changes, err := collectFieldChanges(c, staging, service.TravelDocumentUploadFields, documentContentTypes)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), err)
		return
	}

	doc, warnings, err := h.clientService.UpdateTravelDocument(agencyID, clientID, docID, input, changes)
	if err != nil {
		respondServiceError(c, h.logger, err, "update travel document")
		return
	}
	if len(warnings) > 0 {
		utils.SuccessResponseWithWarnings(c, "Travel document updated", h.toDocumentResponse(doc), warnings)
		return
	}
	utils.SuccessResponse(c, "Travel document updated", h.toDocumentResponse(doc))
}

// DeleteTravelDocument removes a travel document and its scan
// @Summary Delete travel document
// @Tags clients
// @Produce json
// @Param id path int true "Client ID"
// @Param document_id path int true "Travel document ID"
// @Success 200 {object} utils.APIResponse "Travel document deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/clients/{id}/travel-documents/{document_id} [delete]
func (h *ClientHandler) DeleteTravelDocument(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	clientID, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid client ID", err)
		return
	}
	docID, err := utils.GetUintParam(c, "document_id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid travel document ID", err)
		return
	}
	warnings, err := h.clientService.DeleteTravelDocument(agencyID, clientID, docID)
	if err != nil {
		respondServiceError(c, h.logger, err, "delete travel document")
		return
	}
	if len(warnings) > 0 {
		utils.SuccessResponseWithWarnings(c, "Travel document deleted", nil, warnings)
		return
	}
	utils.SuccessResponse(c, "Travel document deleted", nil)
}
