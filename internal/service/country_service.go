package service

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/tripfolio/tripstats-backend-go/internal/countries"
	"github.com/tripfolio/tripstats-backend-go/internal/models"
	"github.com/tripfolio/tripstats-backend-go/internal/overrides"
	"github.com/tripfolio/tripstats-backend-go/internal/repository"
)

var isoCodePattern = regexp.MustCompile(`^[A-Za-z]{2}$`)

// CountryService handles business logic for visited-country listings and
// manual overrides
type CountryService struct {
	tripService  *TripService
	overrideRepo *repository.OverrideRepository
}

// NewCountryService creates a new country service
func NewCountryService(tripService *TripService, overrideRepo *repository.OverrideRepository) *CountryService {
	return &CountryService{
		tripService:  tripService,
		overrideRepo: overrideRepo,
	}
}

// Toggle flips a country's visited state. Overrides that agree with the
// automated determination are removed rather than stored, so toggling twice
// leaves no trace.
func (s *CountryService) Toggle(code string) (bool, error) {
	if !isoCodePattern.MatchString(code) {
		return false, fmt.Errorf("invalid country code %q", code)
	}
	code = strings.ToUpper(code)

	view, err := s.tripService.CurrentView()
	if err != nil {
		return false, err
	}

	manual := view.Overrides
	visited, present := overrides.Toggle(
		manual,
		code,
		view.Stats.CountriesVisited[code],
		view.AutomatedStats.CountriesVisited[code],
	)

	if present {
		err = s.overrideRepo.Set(code, visited)
	} else {
		err = s.overrideRepo.Delete(code)
	}
	if err != nil {
		return false, err
	}
	return visited, nil
}

// ByContinent lists every known country grouped by continent with its final
// and automated visited state, for the country-picker view.
func (s *CountryService) ByContinent() (map[string][]models.CountryStatus, error) {
	view, err := s.tripService.CurrentView()
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.CountryStatus, len(countries.Continents))
	for _, continent := range countries.Continents {
		grouped[continent] = []models.CountryStatus{}
	}

	for _, iso := range countries.Codes() {
		continent := countries.ContinentOf(iso)
		grouped[continent] = append(grouped[continent], models.CountryStatus{
			ISO:       iso,
			Name:      countries.NameOf(iso),
			Continent: continent,
			Visited:   view.Stats.CountriesVisited[iso],
			Automated: view.AutomatedStats.CountriesVisited[iso],
		})
	}

	for continent := range grouped {
		list := grouped[continent]
		sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	}

	return grouped, nil
}
