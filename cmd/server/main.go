package main

import (
	"log"

	"github.com/tripfolio/tripstats-backend-go/internal/api"
	"github.com/tripfolio/tripstats-backend-go/internal/config"
	"github.com/tripfolio/tripstats-backend-go/internal/database"
	"github.com/tripfolio/tripstats-backend-go/internal/handler"
	"github.com/tripfolio/tripstats-backend-go/internal/repository"
	"github.com/tripfolio/tripstats-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	// Static lookup assets load once and live for the process lifetime.
	iataToCountry := service.LoadIATATable(cfg.IATAPath)

	db := database.GetDB()
	importRepo := repository.NewImportRepository(db)
	overrideRepo := repository.NewOverrideRepository(db)
	travelerRepo := repository.NewTravelerRepository(db)

	tripService := service.NewTripService(importRepo, overrideRepo, travelerRepo, iataToCountry)
	countryService := service.NewCountryService(tripService, overrideRepo)
	exportService := service.NewExportService(tripService)

	router := api.SetupRouter(cfg, &api.Handlers{
		Auth:     handler.NewAuthHandler(cfg.JWTSecret),
		Import:   handler.NewImportHandler(tripService),
		Trip:     handler.NewTripHandler(tripService),
		Stats:    handler.NewStatsHandler(tripService),
		Country:  handler.NewCountryHandler(countryService),
		Traveler: handler.NewTravelerHandler(tripService),
		Export:   handler.NewExportHandler(exportService),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
