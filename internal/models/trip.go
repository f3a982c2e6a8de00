package models

import "time"

// TimelineItem type constants
const (
	ItemTypeFlight        = "flight"
	ItemTypeFlightBooking = "flight_booking"
	ItemTypeLodging       = "lodging"
	ItemTypeCar           = "car"
	ItemTypeRail          = "rail"
	ItemTypeActivity      = "activity"
	ItemTypeOther         = "other"
)

// DateTime is a naive local date with an optional time, as the export
// delivers it. No time zone handling beyond local-date arithmetic.
type DateTime struct {
	Date string `json:"date,omitempty"` // YYYY-MM-DD
	Time string `json:"time,omitempty"` // HH:MM
}

// Instant composes the date and time into a single sortable instant.
// A missing or unparsable date collates at the Unix epoch so that items with
// partial data still order deterministically.
func (dt DateTime) Instant() time.Time {
	if dt.Date == "" {
		return time.Unix(0, 0).UTC()
	}
	t := dt.Time
	if t == "" {
		t = "00:00"
	}
	parsed, err := time.Parse("2006-01-02 15:04", dt.Date+" "+t)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", dt.Date)
		if err != nil {
			return time.Unix(0, 0).UTC()
		}
	}
	return parsed
}

// IsZero reports whether no date is present.
func (dt DateTime) IsZero() bool {
	return dt.Date == ""
}

// TimelineItem is one classified event within a trip. Flight-typed items fill
// the flight fields; lodging and generic items keep their source object in
// Details instead.
type TimelineItem struct {
	Type      string   `json:"type"`
	Name      string   `json:"name"`
	Start     DateTime `json:"start"`
	End       DateTime `json:"end"`
	Travelers []string `json:"travelers,omitempty"`

	// Flight fields
	Airline      string `json:"airline,omitempty"`
	AirlineCode  string `json:"airlineCode,omitempty"`
	FlightNumber string `json:"flightNumber,omitempty"`
	Origin       string `json:"origin,omitempty"`      // IATA code
	Destination  string `json:"destination,omitempty"` // IATA code
	Duration     string `json:"duration,omitempty"`
	Distance     string `json:"distance,omitempty"` // display string with unit suffix, may be empty
	Aircraft     string `json:"aircraft,omitempty"`

	// Full source object for lodging/car/rail/activity items
	Details map[string]any `json:"details,omitempty"`
}

// Trip is one normalized itinerary record. Immutable once built; rebuilt from
// the raw document on every reparse.
type Trip struct {
	ID          string `json:"id"` // random fallback token when the source has none; not stable across re-imports
	DisplayName string `json:"displayName"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate     string `json:"endDate,omitempty"`
	ImageURL    string `json:"image,omitempty"`
	Year        int    `json:"year,omitempty"` // 0 when the start date is missing
	Days        int    `json:"days"`           // inclusive day count, 0 when dates are missing
	Country     string `json:"country,omitempty"`

	Travelers []string       `json:"travelers"`
	Flights   []TimelineItem `json:"flights"`  // flight items flattened out of Timeline
	Timeline  []TimelineItem `json:"timeline"` // all items, ascending by start instant
}
