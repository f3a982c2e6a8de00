package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripfolio/tripstats-backend-go/internal/service"
	"github.com/tripfolio/tripstats-backend-go/pkg/response"
)

// TravelerHandler handles HTTP requests for the traveler filter
type TravelerHandler struct {
	tripService *service.TripService
}

// NewTravelerHandler creates a new traveler handler
func NewTravelerHandler(tripService *service.TripService) *TravelerHandler {
	return &TravelerHandler{tripService: tripService}
}

// GetSelection handles GET /api/v1/travelers/selection
func (h *TravelerHandler) GetSelection(c *gin.Context) {
	view, err := h.tripService.CurrentView()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load traveler selection", err)
		return
	}

	response.Success(c, gin.H{
		"all":      view.AllTravelers,
		"selected": view.SelectedTravelers,
	})
}

// selectionRequest is the PUT body for the traveler filter
type selectionRequest struct {
	Selected []string `json:"selected"`
}

// SetSelection handles PUT /api/v1/travelers/selection. An empty list clears
// the filter.
func (h *TravelerHandler) SetSelection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.tripService.SetSelectedTravelers(req.Selected); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to save traveler selection", err)
		return
	}

	response.Success(c, gin.H{
		"selected": req.Selected,
	})
}
