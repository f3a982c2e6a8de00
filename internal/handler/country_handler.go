package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripfolio/tripstats-backend-go/internal/service"
	"github.com/tripfolio/tripstats-backend-go/pkg/response"
)

// CountryHandler handles HTTP requests for visited countries and overrides
type CountryHandler struct {
	countryService *service.CountryService
}

// NewCountryHandler creates a new country handler
func NewCountryHandler(countryService *service.CountryService) *CountryHandler {
	return &CountryHandler{countryService: countryService}
}

// GetCountries handles GET /api/v1/countries
func (h *CountryHandler) GetCountries(c *gin.Context) {
	grouped, err := h.countryService.ByContinent()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list countries", err)
		return
	}

	response.Success(c, grouped)
}

// ToggleCountry handles POST /api/v1/countries/:code/toggle
func (h *CountryHandler) ToggleCountry(c *gin.Context) {
	code := c.Param("code")

	visited, err := h.countryService.Toggle(code)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to toggle country", err)
		return
	}

	response.Success(c, gin.H{
		"iso":     code,
		"visited": visited,
	})
}
