package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/service"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/utils"
)

// Context keys populated by Auth
const (
	ContextUserID   = "user_id"
	ContextAgencyID = "agency_id"
	ContextBranchID = "branch_id"
	ContextRole     = "role"
)

// Auth validates the Bearer token and stores the principal in the request
// context
func Auth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.UnauthorizedResponse(c, "Authorization header is required")
			c.Abort()
			return
		}
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			utils.UnauthorizedResponse(c, "Authorization header must be a Bearer token")
			c.Abort()
			return
		}

		claims, err := authService.ParseToken(tokenString)
		if err != nil {
			utils.UnauthorizedResponse(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		if claims.AgencyID != nil {
			c.Set(ContextAgencyID, *claims.AgencyID)
		}
		if claims.BranchID != nil {
			c.Set(ContextBranchID, *claims.BranchID)
		}
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole allows only the named roles past this point
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		utils.ForbiddenResponse(c, "Insufficient permissions")
		c.Abort()
	}
}

// AgencyID returns the authenticated user's agency scope
func AgencyID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextAgencyID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// UserID returns the authenticated user's id
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
