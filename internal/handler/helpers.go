package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/service"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/internal/upload"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/logger"
	"github.com/SanmishaTech/VoyageCentralApi-sub000/pkg/utils"
)

// Content types accepted for image uploads (logos, letterheads)
var imageContentTypes = []string{"image/png", "image/jpeg", "image/webp"}

// Content types accepted for document uploads (scans, itineraries)
var documentContentTypes = []string{"application/pdf", "image/png", "image/jpeg", "image/webp"}

// respondServiceError maps service errors onto the standard response
// envelope
func respondServiceError(c *gin.Context, log *logger.Logger, err error, operation string) {
	if errors.Is(err, service.ErrNotFound) {
		utils.NotFoundResponse(c, "Resource not found")
		return
	}
	if ce, ok := service.AsConflict(err); ok {
		utils.ConflictResponse(c, ce.Message, ce.Field)
		return
	}
	log.WithError(err).Error("Failed to " + operation)
	utils.InternalServerErrorResponse(c, "Failed to "+operation, err)
}

// collectFieldChanges inspects a multipart form and builds the per-field
// upload instructions. A file part under the field name stages a
// replacement; a form value "<field>_filename" set to "null" or the empty
// string requests removal.
func collectFieldChanges(c *gin.Context, staging *upload.Staging, fields []string, allowedTypes []string) (map[string]upload.FieldChange, error) {
	changes := map[string]upload.FieldChange{}

	form, err := c.MultipartForm()
	if err != nil {
		// Non-multipart requests carry no file changes
		return changes, nil
	}

	for _, field := range fields {
		if files := form.File[field]; len(files) > 0 {
			staged, err := staging.Receive(field, files[0])
			if err != nil {
				return nil, err
			}
			if err := staged.CheckType(allowedTypes...); err != nil {
				return nil, err
			}
			changes[field] = upload.FieldChange{State: upload.FieldReplaced, NewFile: staged}
			continue
		}
		if values, ok := form.Value[field+"_filename"]; ok && len(values) > 0 {
			if values[0] == "" || values[0] == "null" {
				changes[field] = upload.FieldChange{State: upload.FieldRemoved}
			}
		}
	}
	return changes, nil
}

func strPtr(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok {
		return &v
	}
	return nil
}

func uintPtr(c *gin.Context, key string) (*uint, error) {
	v, ok := c.GetPostForm(key)
	if !ok || v == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%s must be a positive integer", key)
	}
	u := uint(parsed)
	return &u, nil
}

func intPtr(c *gin.Context, key string) (*int, error) {
	v, ok := c.GetPostForm(key)
	if !ok || v == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &parsed, nil
}

func decimalPtr(c *gin.Context, key string) (*decimal.Decimal, error) {
	v, ok := c.GetPostForm(key)
	if !ok || v == "" {
		return nil, nil
	}
	parsed, err := decimal.NewFromString(v)
	if err != nil {
		return nil, fmt.Errorf("%s must be a decimal number", key)
	}
	return &parsed, nil
}

func timePtr(c *gin.Context, key string) (*time.Time, error) {
	v, ok := c.GetPostForm(key)
	if !ok || v == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, fmt.Errorf("%s must be a date in YYYY-MM-DD format", key)
	}
	return &parsed, nil
}
