package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/middleware"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/service"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/logger"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/utils"
)

// UserRequest represents the staff user create/update payload
type UserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	BranchID *uint   `json:"branch_id"`
	Active   *bool   `json:"active"`
}

func (r *UserRequest) toInput() *service.UserInput {
	return &service.UserInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
		BranchID: r.BranchID,
		Active:   r.Active,
	}
}

// UserHandler handles staff user HTTP requests
type UserHandler struct {
	userService service.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(userService service.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// CreateUser creates a staff user
// @Summary Create staff user
// @Description Create a staff user inside the authenticated agency
// @Tags users
// @Accept json
// @Produce json
// @Param request body UserRequest true "User payload"
// @Success 201 {object} utils.APIResponse{data=models.User} "User created"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 409 {object} utils.APIResponse "Duplicate email"
// @Router /api/v1/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	user, err := h.userService.CreateUser(&agencyID, req.toInput())
	if err != nil {
		respondServiceError(c, h.logger, err, "create user")
		return
	}
	utils.CreatedResponse(c, "User created", user)
}

// GetUser retrieves one staff user
// @Summary Get staff user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse{data=models.User} "User"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", err)
		return
	}
	user, err := h.userService.GetUser(agencyID, id)
	if err != nil {
		respondServiceError(c, h.logger, err, "get user")
		return
	}
	utils.SuccessResponse(c, "User retrieved", user)
}

// ListUsers retrieves staff users with pagination
// @Summary List staff users
// @Tags users
// @Produce json
// @Param search query string false "Search by name or email"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} utils.PaginatedResponse "Users"
// @Router /api/v1/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	page, perPage := utils.GetPaginationParams(c)
	users, total, err := h.userService.ListUsers(agencyID, c.Query("search"), page, perPage)
	if err != nil {
		respondServiceError(c, h.logger, err, "list users")
		return
	}
	utils.PaginatedSuccessResponse(c, "Users retrieved", users, page, perPage, total)
}

// UpdateUser updates a staff user
// @Summary Update staff user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UserRequest true "User payload"
// @Success 200 {object} utils.APIResponse{data=models.User} "User updated"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Failure 409 {object} utils.APIResponse "Duplicate email"
// @Router /api/v1/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", err)
		return
	}
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}
	user, err := h.userService.UpdateUser(agencyID, id, req.toInput())
	if err != nil {
		respondServiceError(c, h.logger, err, "update user")
		return
	}
	utils.SuccessResponse(c, "User updated", user)
}

// DeleteUser removes a staff user
// @Summary Delete staff user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse "User deleted"
// @Failure 404 {object} utils.APIResponse "Not found"
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	agencyID, ok := middleware.AgencyID(c)
	if !ok {
		utils.ForbiddenResponse(c, "Agency scope is required")
		return
	}
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", err)
		return
	}
	if err := h.userService.DeleteUser(agencyID, id); err != nil {
		respondServiceError(c, h.logger, err, "delete user")
		return
	}
	utils.SuccessResponse(c, "User deleted", nil)
}
