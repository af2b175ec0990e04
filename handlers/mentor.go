package handlers

import (
	"net/http"

	"mentorsetu/models"
	"mentorsetu/services/mentor"
	"mentorsetu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MentorHandler serves the mentor directory endpoints.
type MentorHandler struct {
	Catalog mentor.CatalogService
}

// NewMentorHandler creates a MentorHandler.
func NewMentorHandler(catalog mentor.CatalogService) *MentorHandler {
	return &MentorHandler{Catalog: catalog}
}

// ListMentorsHandler returns the full mentor catalog.
func (h *MentorHandler) ListMentorsHandler(c *gin.Context) {
	logger := getLogger(c)

	mentors, err := h.Catalog.GetMentors(c.Request.Context())
	if err != nil {
		logger.Error("Failed to retrieve mentors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get mentors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mentors": mentors})
}

// GetMentorHandler returns details for a specific mentor.
func (h *MentorHandler) GetMentorHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	m, err := h.Catalog.GetMentorByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to retrieve mentor", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get mentor"})
		return
	}
	if m == nil {
		utils.JSONError(c, http.StatusNotFound, "Mentor not found", id)
		return
	}
	c.JSON(http.StatusOK, m)
}

// SearchMentorsHandler filters the catalog by the query parameters.
func (h *MentorHandler) SearchMentorsHandler(c *gin.Context) {
	logger := getLogger(c)

	var filters models.SearchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid search filters", err.Error())
		return
	}

	mentors, err := h.Catalog.Search(c.Request.Context(), filters)
	if err != nil {
		logger.Error("Mentor search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search mentors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mentors": mentors})
}
