package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetIDParam parses the ":id" path parameter as an unsigned integer
func GetIDParam(c *gin.Context) (uint, error) {
	return GetUintParam(c, "id")
}

// GetUintParam parses a named path parameter as an unsigned integer
func GetUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: %q", name, raw)
	}
	if id == 0 {
		return 0, fmt.Errorf("invalid %s parameter: must be positive", name)
	}
	return uint(id), nil
}

// GetPaginationParams reads page/per_page query parameters with defaults
func GetPaginationParams(c *gin.Context) (page, perPage int) {
	page = 1
	perPage = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if pp := c.Query("per_page"); pp != "" {
		if v, err := strconv.Atoi(pp); err == nil && v > 0 {
			perPage = v
		}
	}
	return page, perPage
}

// GetIntQuery reads an optional integer query parameter, nil when absent or malformed
func GetIntQuery(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
