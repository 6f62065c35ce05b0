package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/utils"
)

// ErrorHandler converts panics into a JSON 500 response
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				utils.InternalServerErrorResponse(c, "Internal server error", fmt.Errorf("%v", r))
				c.Abort()
			}
		}()
		c.Next()
	}
}

// NoRouteHandler responds to unknown paths
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.NotFoundResponse(c, fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path))
	}
}

// NoMethodHandler responds to known paths with an unsupported method
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.BadRequestResponse(c, fmt.Sprintf("Method %s not allowed", c.Request.Method), nil)
	}
}
