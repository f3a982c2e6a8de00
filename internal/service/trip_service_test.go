package service

import (
	"database/sql"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/tripfolio/tripstats-backend-go/internal/database"
	"github.com/tripfolio/tripstats-backend-go/internal/repository"
)

type testEnv struct {
	trips     *TripService
	countries *CountryService
	exports   *ExportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// A pooled second connection would see its own empty in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))

	importRepo := repository.NewImportRepository(db)
	overrideRepo := repository.NewOverrideRepository(db)
	travelerRepo := repository.NewTravelerRepository(db)

	iata := map[string]string{"OSL": "NO", "AMS": "NL", "CDG": "FR"}
	trips := NewTripService(importRepo, overrideRepo, travelerRepo, iata)

	return &testEnv{
		trips:     trips,
		countries: NewCountryService(trips, overrideRepo),
		exports:   NewExportService(trips),
	}
}

func sampleDocument(t *testing.T) []byte {
	t.Helper()

	doc := map[string]any{
		"Trips": []any{
			map[string]any{
				"TripData": map[string]any{
					"id":               "trip-1",
					"display_name":     "Amsterdam Weekend",
					"primary_location": "Amsterdam, Netherlands",
					"start_date":       "2023-05-12",
					"end_date":         "2023-05-14",
				},
				"Objects": []any{
					map[string]any{
						"Segment": map[string]any{
							"start_airport_code": "OSL",
							"end_airport_code":   "AMS",
							"end_city_name":      "Amsterdam",
							"marketing_airline":  "KLM",
							"StartDateTime":      map[string]any{"date": "2023-05-12", "time": "09:30"},
						},
						"Traveler": map[string]any{"first_name": "anna"},
					},
				},
			},
			map[string]any{
				"TripData": map[string]any{
					"id":               "trip-2",
					"display_name":     "Paris Solo",
					"primary_location": "Paris, France",
					"start_date":       "2024-02-01",
					"end_date":         "2024-02-05",
				},
				"Objects": []any{
					map[string]any{
						"Segment": map[string]any{
							"start_airport_code": "OSL",
							"end_airport_code":   "CDG",
							"end_city_name":      "Paris",
							"marketing_airline":  "Air France",
							"StartDateTime":      map[string]any{"date": "2024-02-01", "time": "07:00"},
						},
						"Traveler": map[string]any{"first_name": "bjørn"},
					},
				},
			},
		},
	}

	payload, err := json.Marshal(doc)
	require.NoError(t, err)
	return payload
}

func TestCurrentViewBeforeAnyImport(t *testing.T) {
	env := newTestEnv(t)

	view, err := env.trips.CurrentView()
	require.NoError(t, err)

	assert.Empty(t, view.Trips)
	assert.Equal(t, 0, view.Stats.TotalTrips)
	assert.Empty(t, view.AllTravelers)
	assert.Empty(t, view.Overrides)
}

func TestImportRejectsInvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.trips.Import([]byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestImportAndCurrentView(t *testing.T) {
	env := newTestEnv(t)

	count, err := env.trips.Import(sampleDocument(t))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	view, err := env.trips.CurrentView()
	require.NoError(t, err)

	require.Len(t, view.Trips, 2)
	// Newest trip first.
	assert.Equal(t, "trip-2", view.Trips[0].ID)
	assert.Equal(t, []string{"Anna", "Bjørn"}, view.AllTravelers)

	assert.Equal(t, 2, view.Stats.TotalTrips)
	assert.Equal(t, 2, view.Stats.TotalFlights)
	assert.ElementsMatch(t, []string{"NO", "NL", "FR"}, view.Stats.UniqueCountries)
	assert.NotNil(t, view.Stats.RawData)
	assert.Nil(t, view.AutomatedStats.RawData)
}

func TestLatestImportWins(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.trips.Import(sampleDocument(t))
	require.NoError(t, err)
	_, err = env.trips.Import([]byte(`{"Trips": []}`))
	require.NoError(t, err)

	view, err := env.trips.CurrentView()
	require.NoError(t, err)
	assert.Empty(t, view.Trips)
}

func TestTravelerFilter(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.trips.Import(sampleDocument(t))
	require.NoError(t, err)

	require.NoError(t, env.trips.SetSelectedTravelers([]string{"Anna"}))

	view, err := env.trips.CurrentView()
	require.NoError(t, err)

	require.Len(t, view.Trips, 1)
	assert.Equal(t, "trip-1", view.Trips[0].ID)
	assert.Equal(t, []string{"Anna"}, view.SelectedTravelers)
	// Stats follow the filter; the full traveler list does not.
	assert.Equal(t, 1, view.Stats.TotalTrips)
	assert.Equal(t, []string{"Anna", "Bjørn"}, view.AllTravelers)

	// Clearing the filter restores everything.
	require.NoError(t, env.trips.SetSelectedTravelers(nil))
	view, err = env.trips.CurrentView()
	require.NoError(t, err)
	assert.Len(t, view.Trips, 2)
}

func TestCountryToggleRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.trips.Import(sampleDocument(t))
	require.NoError(t, err)

	// JP is not automated; forcing it in stores an override.
	visited, err := env.countries.Toggle("jp")
	require.NoError(t, err)
	assert.True(t, visited)

	view, err := env.trips.CurrentView()
	require.NoError(t, err)
	assert.Contains(t, view.Stats.UniqueCountries, "JP")
	assert.NotContains(t, view.AutomatedStats.UniqueCountries, "JP")
	assert.Equal(t, map[string]bool{"JP": true}, view.Overrides)

	// Toggling back to the automated state clears the stored override.
	visited, err = env.countries.Toggle("JP")
	require.NoError(t, err)
	assert.False(t, visited)

	view, err = env.trips.CurrentView()
	require.NoError(t, err)
	assert.NotContains(t, view.Stats.UniqueCountries, "JP")
	assert.Empty(t, view.Overrides)
}

func TestCountryToggleInvalidCode(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.countries.Toggle("JPN")
	assert.Error(t, err)
	_, err = env.countries.Toggle("")
	assert.Error(t, err)
}

func TestCountryToggleForcesOutAutomated(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.trips.Import(sampleDocument(t))
	require.NoError(t, err)

	visited, err := env.countries.Toggle("NO")
	require.NoError(t, err)
	assert.False(t, visited)

	view, err := env.trips.CurrentView()
	require.NoError(t, err)
	assert.NotContains(t, view.Stats.UniqueCountries, "NO")
	assert.Contains(t, view.AutomatedStats.UniqueCountries, "NO")
	assert.Equal(t, map[string]bool{"NO": false}, view.Overrides)
}

func TestByContinent(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.trips.Import(sampleDocument(t))
	require.NoError(t, err)

	grouped, err := env.countries.ByContinent()
	require.NoError(t, err)

	europe := grouped["Europe"]
	require.NotEmpty(t, europe)
	var norway bool
	for _, c := range europe {
		if c.ISO == "NO" {
			norway = true
			assert.True(t, c.Visited)
			assert.True(t, c.Automated)
			assert.Equal(t, "Norway", c.Name)
		}
	}
	assert.True(t, norway, "Europe listing misses NO")
}

func TestBundleExportAndReimport(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.trips.Import(sampleDocument(t))
	require.NoError(t, err)
	_, err = env.countries.Toggle("JP")
	require.NoError(t, err)

	bundle, err := env.exports.Bundle()
	require.NoError(t, err)
	assert.True(t, bundle.Marker)
	assert.Equal(t, map[string]bool{"JP": true}, bundle.ManualVisitedCountries)

	payload, err := json.Marshal(bundle)
	require.NoError(t, err)

	// Re-import into a fresh environment: trips and overrides both come back.
	fresh := newTestEnv(t)
	count, err := fresh.trips.Import(payload)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	view, err := fresh.trips.CurrentView()
	require.NoError(t, err)
	assert.Len(t, view.Trips, 2)
	assert.Contains(t, view.Stats.UniqueCountries, "JP")
	assert.Equal(t, map[string]bool{"JP": true}, view.Overrides)
}

func TestBundleBeforeAnyImport(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.exports.Bundle()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing imported")
}

func TestTripsCSV(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.trips.Import(sampleDocument(t))
	require.NoError(t, err)

	out, err := env.exports.TripsCSV()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,name,location,country,start_date,end_date,days,flights,travelers", lines[0])
	assert.Contains(t, lines[1], "trip-2")
	assert.Contains(t, lines[2], "trip-1")
}
