package handlers

import (
	"net/http"

	"mentorsetu/models"
	"mentorsetu/services/application"
	"mentorsetu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ApplicationHandler serves the mentor application endpoints.
type ApplicationHandler struct {
	Applications application.ApplicationService
}

// NewApplicationHandler creates an ApplicationHandler.
func NewApplicationHandler(applications application.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

func applicationStatusCode(result string) int {
	switch result {
	case "Missing required fields", "Invalid application status":
		return http.StatusBadRequest
	case "Application not found":
		return http.StatusNotFound
	case "Application submission failed. Please try again.":
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

// SubmitApplicationHandler accepts a new mentor application.
func (h *ApplicationHandler) SubmitApplicationHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.ApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Applications.Submit(c.Request.Context(), input)
	if err != nil {
		logger.Error("Failed to submit application", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		return
	}
	if !result.Success {
		c.JSON(applicationStatusCode(result.Error), result)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListApplicationsHandler returns all stored applications.
func (h *ApplicationHandler) ListApplicationsHandler(c *gin.Context) {
	logger := getLogger(c)

	applications, err := h.Applications.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to retrieve applications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get applications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

// UpdateApplicationStatusHandler approves or rejects an application.
func (h *ApplicationHandler) UpdateApplicationStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Applications.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		logger.Error("Failed to update application status", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application status"})
		return
	}
	if !result.Success {
		c.JSON(applicationStatusCode(result.Error), result)
		return
	}
	c.JSON(http.StatusOK, result)
}
