// Package parser converts a raw itinerary export document into normalized
// trips with chronologically sorted timelines. Malformed records degrade to
// zero values instead of failing the parse: one bad object never prevents the
// rest of the document from loading.
package parser

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tripfolio/tripstats-backend-go/internal/countries"
	"github.com/tripfolio/tripstats-backend-go/internal/models"
	"github.com/tripfolio/tripstats-backend-go/internal/mojibake"
)

// ParseDocument parses every trip in the export document. Documents without
// a Trips collection yield an empty result. Trips are returned newest first;
// trips without a start date sort last.
func ParseDocument(doc map[string]any) []models.Trip {
	if doc == nil {
		return nil
	}

	rawTrips := asSlice(doc["Trips"])
	trips := make([]models.Trip, 0, len(rawTrips))
	for _, raw := range rawTrips {
		record := asMap(raw)
		if record == nil {
			continue
		}
		trips = append(trips, parseTrip(asMap(mojibake.Fix(record))))
	}

	sort.SliceStable(trips, func(i, j int) bool {
		if trips[i].StartDate == "" {
			return false
		}
		if trips[j].StartDate == "" {
			return true
		}
		return trips[i].StartDate > trips[j].StartDate
	})

	return trips
}

func parseTrip(record map[string]any) models.Trip {
	data := asMap(record["TripData"])
	objects := asSlice(record["Objects"])

	// Travelers across all objects, deduplicated and sorted.
	travelerSet := make(map[string]bool)
	for _, o := range objects {
		for _, name := range objectTravelers(asMap(o)) {
			travelerSet[name] = true
		}
	}
	travelers := sortedKeys(travelerSet)

	timeline, flights := buildTimeline(data, objects)

	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].Start.Instant().Before(timeline[j].Start.Instant())
	})

	startDate := fieldString(data, "start_date")
	endDate := fieldString(data, "end_date")

	days := 0
	year := 0
	if start, err := time.Parse("2006-01-02", startDate); err == nil {
		year = start.Year()
		if end, err := time.Parse("2006-01-02", endDate); err == nil && !end.Before(start) {
			days = int(end.Sub(start).Hours()/24) + 1
		}
	}

	displayName := fieldString(data, "displayName")
	if displayName == "" {
		displayName = fieldString(data, "display_name")
	}

	country := countries.Resolve(fieldString(asMap(data["PrimaryLocationAddress"]), "country"))
	if country == "" {
		country = countries.Resolve(fieldString(data, "primary_location"))
	}

	id := fieldString(data, "id")
	if id == "" {
		id = uuid.NewString()
	}

	return models.Trip{
		ID:          id,
		DisplayName: displayName,
		Location:    fieldString(data, "primary_location"),
		StartDate:   startDate,
		EndDate:     endDate,
		ImageURL:    fieldString(data, "image_url"),
		Year:        year,
		Days:        days,
		Country:     country,
		Travelers:   travelers,
		Flights:     flights,
		Timeline:    timeline,
	}
}

// objectTravelers collects normalized first names from an object's Traveler
// and Guest entries. Entries without a usable first name are skipped.
func objectTravelers(obj map[string]any) []string {
	if obj == nil {
		return nil
	}
	seen := make(map[string]bool)
	for _, key := range []string{"Traveler", "Guest"} {
		for _, t := range asSlice(obj[key]) {
			if name := normalizeName(asMap(t)); name != "" {
				seen[name] = true
			}
		}
	}
	return sortedKeys(seen)
}

// normalizeName derives a display name from a traveler entry: first name
// only, first letter upper-cased, remainder lower-cased.
func normalizeName(t map[string]any) string {
	first := strings.TrimSpace(fieldString(t, "first_name"))
	if first == "" {
		return ""
	}
	runes := []rune(strings.ToLower(first))
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func dateTimeFrom(v any) models.DateTime {
	m := asMap(v)
	return models.DateTime{
		Date: fieldString(m, "date"),
		Time: fieldString(m, "time"),
	}
}
