package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripfolio/tripstats-backend-go/internal/service"
	"github.com/tripfolio/tripstats-backend-go/pkg/response"
)

// ExportHandler handles HTTP requests for data exports
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportCSV handles GET /api/v1/export/csv
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	data, err := h.exportService.TripsCSV()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to export CSV", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="trips.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// ExportBundle handles GET /api/v1/export/bundle. The bundle carries the raw
// source document and the override map for a later re-import.
func (h *ExportHandler) ExportBundle(c *gin.Context) {
	bundle, err := h.exportService.Bundle()
	if err != nil {
		response.Error(c, http.StatusNotFound, "Failed to export bundle", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="tripstats-export.json"`)
	c.JSON(http.StatusOK, bundle)
}
