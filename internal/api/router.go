package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tripfolio/tripstats-backend-go/internal/config"
	"github.com/tripfolio/tripstats-backend-go/internal/handler"
	"github.com/tripfolio/tripstats-backend-go/internal/middleware"
)

// Handlers bundles everything the router mounts
type Handlers struct {
	Auth     *handler.AuthHandler
	Import   *handler.ImportHandler
	Trip     *handler.TripHandler
	Stats    *handler.StatsHandler
	Country  *handler.CountryHandler
	Traveler *handler.TravelerHandler
	Export   *handler.ExportHandler
}

// SetupRouter builds the gin engine with middleware and all routes
func SetupRouter(cfg *config.Config, h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Trip Stats API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/auth/token", h.Auth.Token)

		api.GET("/trips", h.Trip.GetTrips)
		api.GET("/stats", h.Stats.GetStats)
		api.GET("/countries", h.Country.GetCountries)

		travelers := api.Group("/travelers")
		{
			travelers.GET("/selection", h.Traveler.GetSelection)
			travelers.PUT("/selection", middleware.Auth(cfg.JWTSecret), h.Traveler.SetSelection)
		}

		export := api.Group("/export")
		{
			export.GET("/csv", h.Export.ExportCSV)
			export.GET("/bundle", h.Export.ExportBundle)
		}

		// Mutating endpoints need a token; imports are also rate limited
		// since parsing a big export is the expensive path.
		api.POST("/imports",
			middleware.Auth(cfg.JWTSecret),
			middleware.RateLimit(10, time.Minute),
			h.Import.Import,
		)
		api.POST("/countries/:code/toggle", middleware.Auth(cfg.JWTSecret), h.Country.ToggleCountry)
	}

	return r
}
