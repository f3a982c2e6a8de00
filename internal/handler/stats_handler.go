package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripfolio/tripstats-backend-go/internal/service"
	"github.com/tripfolio/tripstats-backend-go/pkg/response"
)

// StatsHandler handles HTTP requests for statistics
type StatsHandler struct {
	tripService *service.TripService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(tripService *service.TripService) *StatsHandler {
	return &StatsHandler{tripService: tripService}
}

// GetStats handles GET /api/v1/stats. Returns the reconciled stats plus the
// automated stats so clients can show which countries were overridden.
func (h *StatsHandler) GetStats(c *gin.Context) {
	view, err := h.tripService.CurrentView()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to aggregate statistics", err)
		return
	}

	// The raw passthrough is for the export path, not the stats payload.
	view.Stats.RawData = nil

	response.Success(c, gin.H{
		"stats":             view.Stats,
		"automatedStats":    view.AutomatedStats,
		"allTravelers":      view.AllTravelers,
		"selectedTravelers": view.SelectedTravelers,
		"overrides":         view.Overrides,
	})
}
