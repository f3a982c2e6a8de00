package models

// MonthStats is one month bucket within a year. Days is the size of the
// deduplicated day set for that month, never a sum over trips.
type MonthStats struct {
	Trips    int     `json:"trips"`
	Days     int     `json:"days"`
	Flights  int     `json:"flights"`
	Distance float64 `json:"distance"`
}

// YearStats is one year bucket. Flights land in the year of their own start
// date, so a year's flight count can differ from its trip count even with one
// flight per trip.
type YearStats struct {
	Trips    int                 `json:"trips"`
	Days     int                 `json:"days"`
	Flights  int                 `json:"flights"`
	Distance float64             `json:"distance"`
	Airlines map[string]int      `json:"airlines,omitempty"`
	Months   map[int]*MonthStats `json:"months"`
}

// AirlineCount is one entry of the top-airlines ranking.
type AirlineCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats is the aggregate over a trip collection. Rebuilt from scratch on
// every aggregation call; never mutated item-by-item from outside.
type Stats struct {
	TotalTrips      int     `json:"totalTrips"`
	TotalFlights    int     `json:"totalFlights"`
	TotalDistanceMi float64 `json:"totalDistanceMi"`
	TotalDays       int     `json:"totalDays"` // unique calendar days across all trips

	// CountriesVisited is the working set; UniqueCountries/CountriesCount are
	// the serialized view derived from it.
	CountriesVisited map[string]bool `json:"-"`
	UniqueCountries  []string        `json:"uniqueCountries"`
	CountriesCount   int             `json:"countriesCount"`

	Airlines     map[string]int        `json:"airlines"`
	AirlineCodes map[string]string     `json:"airlineCodes"` // airline name -> first-seen code
	TopAirlines  []AirlineCount        `json:"topAirlines"`
	Years        map[string]*YearStats `json:"years"` // year as string, "Unknown" for dateless flights

	AllTravelers []string `json:"allTravelers"`

	// Trip-length summary
	AvgTripDays     float64 `json:"avgTripDays"`
	MedianTripDays  float64 `json:"medianTripDays"`
	LongestTripDays int     `json:"longestTripDays"`

	// RawData carries the source document through to the export path
	// untouched; attached at the service boundary, never by the aggregator.
	RawData map[string]any `json:"_rawData,omitempty"`
}
