package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripfolio/tripstats-backend-go/internal/models"
)

func flightSegment(origin, dest, destCity, date, tm string) map[string]any {
	return map[string]any{
		"start_airport_code":      origin,
		"end_airport_code":        dest,
		"end_city_name":           destCity,
		"marketing_airline":       "KLM",
		"marketing_airline_code":  "KL",
		"marketing_flight_number": "1234",
		"duration":                "1:20",
		"distance":                "261 mi",
		"aircraft_display_name":   "Embraer 190",
		"StartDateTime":           map[string]any{"date": date, "time": tm},
		"EndDateTime":             map[string]any{"date": date, "time": "23:59"},
	}
}

func TestParseDocumentWithoutTrips(t *testing.T) {
	assert.Empty(t, ParseDocument(nil))
	assert.Empty(t, ParseDocument(map[string]any{}))
	assert.Empty(t, ParseDocument(map[string]any{"Trips": "garbage"}))
}

func TestParseTripScenario(t *testing.T) {
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
						"display_name": "Hotel Krasnapolsky",
						"room_type":    "Double",
						"Address":      map[string]any{"country": "Germany"},
						"StartDateTime": map[string]any{
							"date": "2023-05-12", "time": "15:00",
						},
						"EndDateTime": map[string]any{
							"date": "2023-05-14", "time": "11:00",
						},
						"Guest": map[string]any{"first_name": "anna"},
					},
					map[string]any{
						"Segment": []any{
							flightSegment("OSL", "AMS", "Amsterdam", "2023-05-12", "09:30"),
							flightSegment("AMS", "OSL", "Oslo", "2023-05-14", "17:45"),
						},
						"Traveler": []any{
							map[string]any{"first_name": "ANNA"},
							map[string]any{"first_name": "bjørn"},
							map[string]any{"last_name": "nameless"},
						},
					},
				},
			},
		},
	}

	trips := ParseDocument(doc)
	require.Len(t, trips, 1)
	trip := trips[0]

	assert.Equal(t, "trip-1", trip.ID)
	assert.Equal(t, "Amsterdam Weekend", trip.DisplayName)
	assert.Equal(t, 2023, trip.Year)
	assert.Equal(t, 3, trip.Days)

	// Trip country comes from the primary location, not the lodging address.
	assert.Equal(t, "NL", trip.Country)

	assert.Equal(t, []string{"Anna", "Bjørn"}, trip.Travelers)

	require.Len(t, trip.Flights, 2)
	assert.Equal(t, "OSL", trip.Flights[0].Origin)
	assert.Equal(t, "AMS", trip.Flights[0].Destination)
	assert.Equal(t, "Flight to Amsterdam", trip.Flights[0].Name)
	assert.Equal(t, "KL 1234", trip.Flights[0].FlightNumber)

	// Timeline sorted by start instant: outbound flight, hotel, return flight.
	require.Len(t, trip.Timeline, 3)
	assert.Equal(t, models.ItemTypeFlight, trip.Timeline[0].Type)
	assert.Equal(t, models.ItemTypeLodging, trip.Timeline[1].Type)
	assert.Equal(t, models.ItemTypeFlight, trip.Timeline[2].Type)
	assert.Equal(t, "Flight to Oslo", trip.Timeline[2].Name)

	// Lodging keeps its structured address for downstream country stats.
	addr, ok := trip.Timeline[1].Details["address"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Germany", addr["country"])
}

func TestParseTripSingleObjectShapes(t *testing.T) {
	// Trips, Objects, Segment and Traveler may each arrive as a single
	// object instead of an array.
	doc := map[string]any{
		"Trips": map[string]any{
			"TripData": map[string]any{
				"id":         "t",
				"start_date": "2024-01-01",
				"end_date":   "2024-01-01",
			},
			"Objects": map[string]any{
				"Segment":  flightSegment("CPH", "ARN", "Stockholm", "2024-01-01", "08:00"),
				"Traveler": map[string]any{"first_name": "mia"},
			},
		},
	}

	trips := ParseDocument(doc)
	require.Len(t, trips, 1)
	assert.Equal(t, 1, trips[0].Days)
	assert.Equal(t, []string{"Mia"}, trips[0].Travelers)
	require.Len(t, trips[0].Flights, 1)
	assert.Equal(t, "CPH", trips[0].Flights[0].Origin)
}

func TestParseTripFlightWithoutSegments(t *testing.T) {
	doc := map[string]any{
		"Trips": []any{
			map[string]any{
				"TripData": map[string]any{
					"id":         "t",
					"start_date": "2022-08-01",
					"end_date":   "2022-08-05",
				},
				"Objects": []any{
					map[string]any{
						"display_name":      "Flight",
						"booking_site_name": "Lufthansa",
					},
				},
			},
		},
	}

	trips := ParseDocument(doc)
	require.Len(t, trips, 1)
	require.Len(t, trips[0].Flights, 1)

	flight := trips[0].Flights[0]
	assert.Equal(t, "Flight (Details Unavailable)", flight.Name)
	assert.Equal(t, "Lufthansa", flight.Airline)
	assert.Equal(t, "Unknown", flight.Origin)
	assert.Equal(t, "2022-08-01", flight.Start.Date)
}

func TestParseTripDropsUndatedObjects(t *testing.T) {
	doc := map[string]any{
		"Trips": []any{
			map[string]any{
				"TripData": map[string]any{"id": "t"},
				"Objects": []any{
					map[string]any{
						"display_name": "City Walking Tour",
						"Traveler":     map[string]any{"first_name": "nora"},
					},
				},
			},
		},
	}

	trips := ParseDocument(doc)
	require.Len(t, trips, 1)

	// No start date: dropped from the timeline, but the traveler still counts.
	assert.Empty(t, trips[0].Timeline)
	assert.Equal(t, []string{"Nora"}, trips[0].Travelers)
}

func TestParseTripDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day", "2024-03-10", "2024-03-10", 1},
		{"inclusive range", "2024-03-10", "2024-03-14", 5},
		{"missing end", "2024-03-10", "", 0},
		{"missing start", "", "2024-03-14", 0},
		{"invalid date", "soon", "2024-03-14", 0},
		{"end before start", "2024-03-14", "2024-03-10", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := map[string]any{
				"Trips": []any{
					map[string]any{
						"TripData": map[string]any{
							"id": "t", "start_date": tt.start, "end_date": tt.end,
						},
					},
				},
			}
			trips := ParseDocument(doc)
			require.Len(t, trips, 1)
			assert.Equal(t, tt.want, trips[0].Days)
		})
	}
}

func TestParseTripOrdering(t *testing.T) {
	doc := map[string]any{
		"Trips": []any{
			map[string]any{"TripData": map[string]any{"id": "old", "start_date": "2019-02-01"}},
			map[string]any{"TripData": map[string]any{"id": "dateless"}},
			map[string]any{"TripData": map[string]any{"id": "new", "start_date": "2024-06-01"}},
		},
	}

	trips := ParseDocument(doc)
	require.Len(t, trips, 3)
	assert.Equal(t, "new", trips[0].ID)
	assert.Equal(t, "old", trips[1].ID)

	// Dateless trips sort last.
	assert.Equal(t, "dateless", trips[2].ID)
}

func TestParseTripFallbackID(t *testing.T) {
	doc := map[string]any{
		"Trips": []any{
			map[string]any{"TripData": map[string]any{"start_date": "2024-06-01"}},
		},
	}

	first := ParseDocument(doc)
	second := ParseDocument(doc)
	require.Len(t, first, 1)
	require.Len(t, second, 1)

	assert.NotEmpty(t, first[0].ID)
	// The fallback token is not stable across re-parses.
	assert.NotEqual(t, first[0].ID, second[0].ID)
}

func TestParseTripFixesEncoding(t *testing.T) {
	doc := map[string]any{
		"Trips": []any{
			map[string]any{
				"TripData": map[string]any{
					"id":               "t",
					"display_name":     "ZÃ¼rich Getaway",
					"primary_location": "ZÃ¼rich, Switzerland",
					"start_date":       "2023-09-01",
					"end_date":         "2023-09-03",
				},
			},
		},
	}

	trips := ParseDocument(doc)
	require.Len(t, trips, 1)
	assert.Equal(t, "Zürich Getaway", trips[0].DisplayName)
	assert.Equal(t, "CH", trips[0].Country)
}

func TestParseTripCountryPrefersStructuredAddress(t *testing.T) {
	doc := map[string]any{
		"Trips": []any{
			map[string]any{
				"TripData": map[string]any{
					"id":                     "t",
					"primary_location":       "Somewhere, Norway",
					"PrimaryLocationAddress": map[string]any{"country": "Sweden"},
					"start_date":             "2023-09-01",
				},
			},
		},
	}

	trips := ParseDocument(doc)
	require.Len(t, trips, 1)
	assert.Equal(t, "SE", trips[0].Country)
}
