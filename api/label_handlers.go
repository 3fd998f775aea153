package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	internalErrors "github.com/gcbaptista/go-label-matcher/internal/errors"
	"github.com/gcbaptista/go-label-matcher/internal/logger"
)

// CreateLabelRequest defines the body for creating a label.
type CreateLabelRequest struct {
	DisplayName string `json:"display_name"`
	Color       string `json:"color,omitempty"`
}

// SearchLabelsRequest searches the label catalog.
type SearchLabelsRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"` // 0 means the server default
}

// CreateLabelHandler handles POST /labels.
func (api *API) CreateLabelHandler(c *gin.Context) {
	var req CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	label, err := api.catalog.Add(req.DisplayName, req.Color)
	if err != nil {
		var validationErr *internalErrors.ValidationError
		var existsErr *internalErrors.LabelAlreadyExistsError
		switch {
		case errors.As(err, &validationErr):
			result := &ValidationResult{Valid: true}
			result.AddError(validationErr.Field, validationErr.Message)
			SendValidationError(c, result)
		case errors.As(err, &existsErr):
			SendLabelExistsError(c, existsErr.DisplayName, existsErr.ExistingID)
		default:
			SendInternalError(c, "create label", err)
		}
		return
	}

	logger.FromContext(c.Request.Context()).Info("Label created",
		zap.String("label_id", label.ID),
		zap.String("display_name", label.DisplayName))

	c.JSON(http.StatusCreated, label)
}

// ListLabelsHandler handles GET /labels.
func (api *API) ListLabelsHandler(c *gin.Context) {
	labels := api.catalog.List()
	c.JSON(http.StatusOK, gin.H{
		"labels": labels,
		"total":  len(labels),
	})
}

// GetLabelHandler handles GET /labels/:labelId.
func (api *API) GetLabelHandler(c *gin.Context) {
	labelID := c.Param("labelId")
	if result := ValidateLabelID(labelID); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	label, err := api.catalog.Get(labelID)
	if err != nil {
		if errors.Is(err, internalErrors.ErrLabelNotFound) {
			SendLabelNotFoundError(c, labelID)
			return
		}
		SendInternalError(c, "get label", err)
		return
	}

	c.JSON(http.StatusOK, label)
}

// DeleteLabelHandler handles DELETE /labels/:labelId.
func (api *API) DeleteLabelHandler(c *gin.Context) {
	labelID := c.Param("labelId")
	if result := ValidateLabelID(labelID); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.catalog.Delete(labelID); err != nil {
		if errors.Is(err, internalErrors.ErrLabelNotFound) {
			SendLabelNotFoundError(c, labelID)
			return
		}
		SendInternalError(c, "delete label", err)
		return
	}

	logger.FromContext(c.Request.Context()).Info("Label deleted", zap.String("label_id", labelID))
	c.JSON(http.StatusOK, gin.H{"message": "Label '" + labelID + "' deleted"})
}

// SearchLabelsHandler handles POST /labels/_search. Besides the ranked hits it
// reports can_create: true when the query is non-blank and no label has exactly
// that name, so the caller may offer to create it.
func (api *API) SearchLabelsHandler(c *gin.Context) {
	startTime := time.Now()

	var req SearchLabelsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	limit, result := ValidateLimit(req.Limit, api.defaultLimit, api.maxLimit)
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	candidates := api.catalog.Candidates()
	response := api.runSearch(req.Query, candidates, limit, startTime)

	canCreate := strings.TrimSpace(req.Query) != "" && !api.matcher.HasExactMatch(req.Query, candidates)
	response.CanCreate = &canCreate

	c.JSON(http.StatusOK, response)
}
