package service

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tripfolio/tripstats-backend-go/internal/models"
	"github.com/tripfolio/tripstats-backend-go/internal/overrides"
	"github.com/tripfolio/tripstats-backend-go/internal/parser"
	"github.com/tripfolio/tripstats-backend-go/internal/repository"
	"github.com/tripfolio/tripstats-backend-go/internal/stats"
)

// View is the fully derived model for presentation: filtered trips, final
// stats with overrides applied, and the untouched automated stats for
// comparison. It is recomputed from the stored raw document on every request;
// nothing here is cached or mutated between calls.
type View struct {
	Trips             []models.Trip   `json:"trips"`
	Stats             *models.Stats   `json:"stats"`
	AutomatedStats    *models.Stats   `json:"automatedStats"`
	AllTravelers      []string        `json:"allTravelers"`
	SelectedTravelers []string        `json:"selectedTravelers"`
	Overrides         map[string]bool `json:"manualVisitedCountries"`
}

// TripService handles business logic for imports and the derived trip model
type TripService struct {
	importRepo    *repository.ImportRepository
	overrideRepo  *repository.OverrideRepository
	travelerRepo  *repository.TravelerRepository
	iataToCountry map[string]string
}

// NewTripService creates a new trip service
func NewTripService(importRepo *repository.ImportRepository, overrideRepo *repository.OverrideRepository, travelerRepo *repository.TravelerRepository, iataToCountry map[string]string) *TripService {
	return &TripService{
		importRepo:    importRepo,
		overrideRepo:  overrideRepo,
		travelerRepo:  travelerRepo,
		iataToCountry: iataToCountry,
	}
}

// Import stores an uploaded export document. Bundled exports produced by
// this service are unwrapped: the raw source document is stored and the
// bundled override map replaces the current one.
func (s *TripService) Import(payload []byte) (int, error) {
	var doc map[string]any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return 0, fmt.Errorf("document is not valid JSON: %w", err)
	}

	source := repository.ImportSourceUpload
	if models.IsExportBundle(doc) {
		raw, _ := doc["rawData"].(map[string]any)
		manual := bundleOverrides(doc)

		rawPayload, err := json.Marshal(raw)
		if err != nil {
			return 0, fmt.Errorf("failed to re-encode bundled document: %w", err)
		}
		payload = rawPayload
		doc = raw
		source = repository.ImportSourceBundle

		if err := s.overrideRepo.Replace(manual); err != nil {
			return 0, err
		}
	}

	if _, err := s.importRepo.Save(payload, source); err != nil {
		return 0, err
	}

	return len(parser.ParseDocument(doc)), nil
}

// CurrentView derives trips and stats from the latest import, the selected
// traveler filter and the stored overrides. Returns an empty view when
// nothing has been imported.
func (s *TripService) CurrentView() (*View, error) {
	payload, err := s.importRepo.Latest()
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return emptyView(), nil
	}

	var doc map[string]any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("stored document is not valid JSON: %w", err)
	}

	trips := parser.ParseDocument(doc)

	travelerSet := make(map[string]bool)
	for _, trip := range trips {
		for _, t := range trip.Travelers {
			travelerSet[t] = true
		}
	}
	allTravelers := make([]string, 0, len(travelerSet))
	for t := range travelerSet {
		allTravelers = append(allTravelers, t)
	}
	sort.Strings(allTravelers)

	selected, err := s.travelerRepo.Selection()
	if err != nil {
		return nil, err
	}
	filtered := filterByTravelers(trips, selected)

	manual, err := s.overrideRepo.All()
	if err != nil {
		return nil, err
	}

	// Aggregate twice rather than deep-copying: aggregation is pure, and the
	// automated copy must stay untouched by the override pass.
	automated := stats.Aggregate(filtered, s.iataToCountry)
	final := stats.Aggregate(filtered, s.iataToCountry)
	overrides.Apply(final, manual)

	// Raw passthrough for the export path, attached here at the service
	// boundary, never inside the aggregator.
	final.RawData = doc

	return &View{
		Trips:             filtered,
		Stats:             final,
		AutomatedStats:    automated,
		AllTravelers:      allTravelers,
		SelectedTravelers: selected,
		Overrides:         manual,
	}, nil
}

// SetSelectedTravelers replaces the traveler filter
func (s *TripService) SetSelectedTravelers(names []string) error {
	return s.travelerRepo.SetSelection(names)
}

// filterByTravelers keeps trips that include at least one selected traveler.
// An empty selection keeps everything.
func filterByTravelers(trips []models.Trip, selected []string) []models.Trip {
	if len(selected) == 0 {
		return trips
	}
	want := make(map[string]bool, len(selected))
	for _, name := range selected {
		want[name] = true
	}

	filtered := make([]models.Trip, 0, len(trips))
	for _, trip := range trips {
		for _, t := range trip.Travelers {
			if want[t] {
				filtered = append(filtered, trip)
				break
			}
		}
	}
	return filtered
}

func bundleOverrides(doc map[string]any) map[string]bool {
	manual := make(map[string]bool)
	raw, _ := doc["manualVisitedCountries"].(map[string]any)
	for code, v := range raw {
		if visited, ok := v.(bool); ok {
			manual[code] = visited
		}
	}
	return manual
}

func emptyView() *View {
	return &View{
		Trips:             []models.Trip{},
		Stats:             stats.Aggregate(nil, nil),
		AutomatedStats:    stats.Aggregate(nil, nil),
		AllTravelers:      []string{},
		SelectedTravelers: []string{},
		Overrides:         map[string]bool{},
	}
}
