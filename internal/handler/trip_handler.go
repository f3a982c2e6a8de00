package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripfolio/tripstats-backend-go/internal/service"
	"github.com/tripfolio/tripstats-backend-go/pkg/response"
)

// TripHandler handles HTTP requests for trips
type TripHandler struct {
	tripService *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// GetTrips handles GET /api/v1/trips
func (h *TripHandler) GetTrips(c *gin.Context) {
	view, err := h.tripService.CurrentView()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to derive trips", err)
		return
	}

	response.Success(c, gin.H{
		"data":  view.Trips,
		"count": len(view.Trips),
	})
}
