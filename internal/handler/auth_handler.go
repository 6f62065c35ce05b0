package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/models"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/service"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/logger"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/utils"
)

// LoginRequest represents the login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login authenticates a staff user and issues a JWT
// @Summary Log in
// @Description Authenticate with email and password and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} utils.APIResponse{data=LoginResponse} "Token issued"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 401 {object} utils.APIResponse "Invalid credentials"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Request body must be valid JSON with email and password", err)
		return
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c, "Invalid email or password")
			return
		}
		h.logger.WithError(err).Error("Failed to log in user")
		utils.InternalServerErrorResponse(c, "Failed to log in", err)
		return
	}

	utils.SuccessResponse(c, "Login successful", LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      result.User,
	})
}
