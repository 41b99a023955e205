package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"healthmate-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExportHandler handles HTTP requests for data-export archives
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Create handles POST /api/export
func (h *ExportHandler) Create(c *gin.Context) {
	archive, err := h.exportService.CreateArchive(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create export"})
		return
	}

	c.JSON(http.StatusOK, archive)
}

// Download handles GET /api/export/:id and streams the archive body
func (h *ExportHandler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid export ID format"})
		return
	}

	archive, body, err := h.exportService.OpenArchive(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrExportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Export not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer body.Close()

	headers := map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="health_export_%s.json"`, archive.ID),
	}
	c.DataFromReader(http.StatusOK, archive.SizeBytes, "application/json", body, headers)
}
