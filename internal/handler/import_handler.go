package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripfolio/tripstats-backend-go/internal/service"
	"github.com/tripfolio/tripstats-backend-go/pkg/response"
)

// maxImportSize caps uploaded documents at 32 MiB.
const maxImportSize = 32 << 20

// ImportHandler handles HTTP requests for document imports
type ImportHandler struct {
	tripService *service.TripService
}

// NewImportHandler creates a new import handler
func NewImportHandler(tripService *service.TripService) *ImportHandler {
	return &ImportHandler{tripService: tripService}
}

// Import handles POST /api/v1/imports. The body is either a plain itinerary
// export or a bundled export produced by this service; bundles also restore
// the manual country overrides they carry.
func (h *ImportHandler) Import(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to read request body", err)
		return
	}
	if len(payload) == 0 {
		response.BadRequest(c, "Empty request body")
		return
	}

	tripCount, err := h.tripService.Import(payload)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to import document", err)
		return
	}

	response.Success(c, gin.H{
		"trips": tripCount,
	})
}
