package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/middleware"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/service"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/logger"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/utils"
)

// BranchRequest represents the branch create/update payload
type BranchRequest struct {
	BranchName    *string `json:"branch_name"`
	Address       *string `json:"address"`
	StateID       *uint   `json:"state_id"`
	CityID        *uint   `json:"city_id"`
	Pincode       *string `json:"pincode"`
	ContactName   *string `json:"contact_name"`
	ContactEmail  *string `json:"contact_email"`
	ContactMobile *string `json:"contact_mobile"`
}

func (r *BranchRequest) toInput() *service.BranchInput {
	return &service.BranchInput{
		BranchName:    r.BranchName,
		Address:       r.Address,
		StateID:       r.StateID,
		CityID:        r.CityID,
		Pincode:       r.Pincode,
		ContactName:   r.ContactName,
		ContactEmail:  r.ContactEmail,
		ContactMobile: r.ContactMobile,
	}
}

// BranchHandler handles branch HTTP requests
type BranchHandler struct {
	branchService service.BranchService
	logger        *logger.Logger
}

// NewBranchHandler creates a new BranchHandler instance
func NewBranchHandler(branchService service.BranchService, logger *logger.Logger) *BranchHandler {
	return &BranchHandler{
		branchService: branchService,
		logger:        logger,
	}
}

// CreateBranch creates a branch
// @Summary Create branch
// @Description Create a branch under the authenticated agency
// @Tags branches
// @Accept json
// @Produce json
// @Param request body BranchRequest true "Branch payload"
// @Success 201 {object} utils.APIResponse{data=models.Branch} "Branch created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/branches [post]
func (h *BranchHandler) CreateBranch(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	branch, err := h.branchService.CreateBranch(agencyID, req.toInput())
	if err != nil {
		respondServiceError(c, h.logger, err, "create branch")
		return
	}
	utils.CreatedResponse(c, "Branch created", branch)
}

// GetBranch retrieves one branch
// @Summary Get branch
// @Tags branches
// @Produce json
// @Param id path int true "Branch ID"
// @Success 200 {object} utils.APIResponse{data=models.Branch} "Branch"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/branches/{id} [get]
func (h *BranchHandler) GetBranch(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid branch ID", err)
		return
	}
	branch, err := h.branchService.GetBranch(agencyID, id)
	if err != nil {
		respondServiceError(c, h.logger, err, "get branch")
		return
	}
	utils.SuccessResponse(c, "Branch retrieved", branch)
}

// ListBranches retrieves branches with pagination
// @Summary List branches
// @Tags branches
// @Produce json
// @Param search query string false "Search by branch name"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} utils.PaginatedResponse "Branches"
// @Router /api/v1/branches [get]
func (h *BranchHandler) ListBranches(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	page, perPage := utils.GetPaginationParams(c)
	branches, total, err := h.branchService.ListBranches(agencyID, c.Query("search"), page, perPage)
	if err != nil {
		respondServiceError(c, h.logger, err, "list branches")
		return
	}
	utils.PaginatedSuccessResponse(c, "Branches retrieved", branches, page, perPage, total)
}

// UpdateBranch updates a branch
// @Summary Update branch
// @Tags branches
// @Accept json
// @Produce json
// @Param id path int true "Branch ID"
// @Param request body BranchRequest true "Branch payload"
// @Success 200 {object} utils.APIResponse{data=models.Branch} "Branch updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/branches/{id} [put]
func (h *BranchHandler) UpdateBranch(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid branch ID", err)
		return
	}
	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	branch, err := h.branchService.UpdateBranch(agencyID, id, req.toInput())
	if err != nil {
		respondServiceError(c, h.logger, err, "update branch")
		return
	}
	utils.SuccessResponse(c, "Branch updated", branch)
}

// DeleteBranch removes a branch
// @Summary Delete branch
// @Tags branches
// @Produce json
// @Param id path int true "Branch ID"
// @Success 200 {object} utils.APIResponse "Branch deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/branches/{id} [delete]
func (h *BranchHandler) DeleteBranch(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid branch ID", err)
		return
	}
	if err := h.branchService.DeleteBranch(agencyID, id); err != nil {
		respondServiceError(c, h.logger, err, "delete branch")
		return
	}
	utils.SuccessResponse(c, "Branch deleted", nil)
}
