package handlers

import (
	"net/http"

	"healthmate-backend/models"
	"healthmate-backend/service"

	"github.com/gin-gonic/gin"
)

// TimelineHandler handles HTTP requests for timeline entries
type TimelineHandler struct {
	timelineService *service.TimelineService
}

// NewTimelineHandler creates a new timeline handler
func NewTimelineHandler(timelineService *service.TimelineService) *TimelineHandler {
	return &TimelineHandler{timelineService: timelineService}
}

// CreateEntryRequest represents the request body for appending an entry
type CreateEntryRequest struct {
	EntryType   string   `json:"entry_type" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	Severity    *int     `json:"severity"`
	Tags        []string `json:"tags"`
}

// Create handles POST /api/timeline/entry
func (h *TimelineHandler) Create(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entryType := models.EntryType(req.EntryType)
	if !entryType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry_type"})
		return
	}
	if req.Severity != nil && (*req.Severity < 1 || *req.Severity > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Severity must be between 1 and 5"})
		return
	}

	entry, err := h.timelineService.Append(c.Request.Context(), service.AppendEntryRequest{
		UserID:      currentUserID(c),
		EntryType:   entryType,
		Title:       req.Title,
		Description: req.Description,
		Severity:    req.Severity,
		Tags:        req.Tags,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// List handles GET /api/timeline/entries
func (h *TimelineHandler) List(c *gin.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	entries, err := h.timelineService.List(c.Request.Context(), currentUserID(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
