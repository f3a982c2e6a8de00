package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tripfolio/tripstats-backend-go/internal/models"
)

// ExportService handles business logic for data exports
type ExportService struct {
	tripService *TripService
}

// NewExportService creates a new export service
func NewExportService(tripService *TripService) *ExportService {
	return &ExportService{tripService: tripService}
}

// TripsCSV renders the current trip summaries as CSV
func (s *ExportService) TripsCSV() ([]byte, error) {
	view, err := s.tripService.CurrentView()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "name", "location", "country", "start_date", "end_date", "days", "flights", "travelers"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, trip := range view.Trips {
		record := []string{
			trip.ID,
			trip.DisplayName,
			trip.Location,
			trip.Country,
			trip.StartDate,
			trip.EndDate,
			strconv.Itoa(trip.Days),
			strconv.Itoa(len(trip.Flights)),
			strings.Join(trip.Travelers, "; "),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// Bundle packages the raw source document together with the manual overrides
// so a later re-import restores both. The raw document comes through the
// stats passthrough unchanged.
func (s *ExportService) Bundle() (*models.ExportBundle, error) {
	view, err := s.tripService.CurrentView()
	if err != nil {
		return nil, err
	}
	if view.Stats.RawData == nil {
		return nil, fmt.Errorf("nothing imported yet")
	}

	return &models.ExportBundle{
		Marker:                 true,
		Version:                models.ExportBundleVersion,
		ExportedAt:             time.Now().UTC().Format(time.RFC3339),
		RawData:                view.Stats.RawData,
		ManualVisitedCountries: view.Overrides,
	}, nil
}
