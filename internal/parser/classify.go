package parser

import (
	"strings"

	"github.com/tripfolio/tripstats-backend-go/internal/models"
)

// classifyRule maps a predicate over a booking object to a timeline item
// type. Rules are evaluated in declaration order and the first match wins,
// so precedence lives in the slice, not in nested conditionals.
type classifyRule struct {
	itemType string
	match    func(obj map[string]any) bool
}

var classifyRules = []classifyRule{
	{models.ItemTypeLodging, func(obj map[string]any) bool {
		if _, ok := obj["room_type"]; ok {
			return true
		}
		return strings.Contains(strings.ToLower(fieldString(obj, "display_name")), "hotel")
	}},
	{models.ItemTypeCar, func(obj map[string]any) bool {
		name := strings.ToLower(fieldString(obj, "display_name"))
		supplier := strings.ToLower(fieldString(obj, "supplier_name"))
		return strings.Contains(name, "car rental") ||
			strings.Contains(supplier, "sixt") ||
			strings.Contains(supplier, "hertz")
	}},
	{models.ItemTypeRail, func(obj map[string]any) bool {
		name := strings.ToLower(fieldString(obj, "display_name"))
		return strings.Contains(name, "train") || strings.Contains(name, "rail")
	}},
}

// classify picks the item type for a non-flight booking object.
func classify(obj map[string]any) string {
	for _, rule := range classifyRules {
		if rule.match(obj) {
			return rule.itemType
		}
	}
	return models.ItemTypeActivity
}

// hasSegmentData reports whether the object carries a non-empty flight
// segment collection (a single segment object or an array of them).
func hasSegmentData(obj map[string]any) bool {
	switch s := obj["Segment"].(type) {
	case map[string]any:
		return len(s) > 0
	case []any:
		return len(s) > 0
	default:
		return false
	}
}

// buildTimeline walks a trip's booking objects and produces the classified
// timeline plus the flattened flight list. An object with flight segments
// yields one item per segment; objects without any start date are dropped
// from the timeline (they still contributed to traveler extraction).
func buildTimeline(data map[string]any, objects []any) (timeline, flights []models.TimelineItem) {
	timeline = []models.TimelineItem{}
	flights = []models.TimelineItem{}

	for _, o := range objects {
		obj := asMap(o)
		if obj == nil {
			continue
		}

		objTravelers := objectTravelers(obj)
		start := dateTimeFrom(obj["StartDateTime"])
		end := dateTimeFrom(obj["EndDateTime"])

		itemType := ""
		if hasSegmentData(obj) {
			segments := nonEmptyMaps(asSlice(obj["Segment"]))
			if len(segments) > 0 {
				for _, seg := range segments {
					item := segmentFlight(seg, objTravelers)
					timeline = append(timeline, item)
					flights = append(flights, item)
				}
				continue
			}
			// Flight booking whose segments are all empty (traveler info
			// only); keep it as a generic entry.
			itemType = models.ItemTypeFlightBooking
		} else if fieldString(obj, "display_name") == "Flight" {
			item := unavailableFlight(data, obj, objTravelers)
			timeline = append(timeline, item)
			flights = append(flights, item)
			continue
		} else {
			itemType = classify(obj)
		}

		if start.IsZero() {
			continue
		}

		name := fieldString(obj, "display_name")
		if name == "" {
			name = itemType
		}
		timeline = append(timeline, models.TimelineItem{
			Type:      itemType,
			Name:      name,
			Start:     start,
			End:       end,
			Travelers: objTravelers,
			Details:   itemDetails(obj, itemType),
		})
	}

	return timeline, flights
}

// segmentFlight builds a flight item from one segment of a flight booking.
func segmentFlight(seg map[string]any, travelers []string) models.TimelineItem {
	dest := fieldString(seg, "end_city_name")
	if dest == "" {
		dest = fieldString(seg, "end_airport_code")
	}
	if dest == "" {
		dest = "Unknown"
	}

	flightNumber := "Unknown Flight"
	if num := fieldString(seg, "marketing_flight_number"); num != "" {
		flightNumber = fieldString(seg, "marketing_airline_code") + " " + num
	}

	return models.TimelineItem{
		Type:         models.ItemTypeFlight,
		Name:         "Flight to " + dest,
		Airline:      fieldString(seg, "marketing_airline"),
		AirlineCode:  fieldString(seg, "marketing_airline_code"),
		FlightNumber: flightNumber,
		Start:        dateTimeFrom(seg["StartDateTime"]),
		End:          dateTimeFrom(seg["EndDateTime"]),
		Origin:       fieldString(seg, "start_airport_code"),
		Destination:  fieldString(seg, "end_airport_code"),
		Duration:     fieldString(seg, "duration"),
		Distance:     fieldString(seg, "distance"),
		Aircraft:     fieldString(seg, "aircraft_display_name"),
		Travelers:    travelers,
	}
}

// unavailableFlight builds the synthetic item for a flight-typed object that
// carries no segment data, dated from the trip summary.
func unavailableFlight(data, obj map[string]any, travelers []string) models.TimelineItem {
	flightDate := fieldString(data, "start_date")
	if flightDate == "" {
		flightDate = fieldString(obj, "booking_date")
	}

	airline := fieldString(obj, "booking_site_name")
	if airline == "" {
		airline = "Unknown Airline"
	}

	return models.TimelineItem{
		Type:         models.ItemTypeFlight,
		Name:         "Flight (Details Unavailable)",
		Airline:      airline,
		FlightNumber: "Unknown",
		Start:        models.DateTime{Date: flightDate},
		End:          models.DateTime{Date: flightDate},
		Origin:       "Unknown",
		Destination:  "Unknown",
		Duration:     "N/A",
		Travelers:    travelers,
	}
}

// itemDetails retains the source object for generic items; lodging also gets
// its structured address surfaced under "address" for country resolution.
func itemDetails(obj map[string]any, itemType string) map[string]any {
	details := make(map[string]any, len(obj)+1)
	for k, v := range obj {
		details[k] = v
	}
	if itemType == models.ItemTypeLodging {
		details["address"] = obj["Address"]
	}
	return details
}
