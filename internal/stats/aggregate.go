// Package stats folds a parsed trip collection into aggregate travel
// statistics: totals, per-year and per-month buckets, unique-day sets,
// visited countries and airline frequency. Aggregation is a pure reduction —
// the result is rebuilt from scratch on every call, so repeated calls over
// identical input produce identical output.
package stats

import (
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tripfolio/tripstats-backend-go/internal/countries"
	"github.com/tripfolio/tripstats-backend-go/internal/models"
)

const unknownYear = "Unknown"

// Aggregate computes statistics over trips, resolving airport countries
// through the iataToCountry lookup (3-letter IATA code -> alpha-2 code).
func Aggregate(trips []models.Trip, iataToCountry map[string]string) *models.Stats {
	s := &models.Stats{
		TotalTrips:       len(trips),
		CountriesVisited: make(map[string]bool),
		Airlines:         make(map[string]int),
		AirlineCodes:     make(map[string]string),
		Years:            make(map[string]*models.YearStats),
	}

	// Unique-day sets keep overlapping trips from double-counting a day.
	allDays := make(map[string]bool)
	yearDays := make(map[string]map[string]bool)
	monthDays := make(map[string]map[string]bool) // keyed year-month

	travelers := make(map[string]bool)
	tripDays := make([]float64, 0, len(trips))

	for _, trip := range trips {
		for _, t := range trip.Travelers {
			travelers[t] = true
		}
		tripDays = append(tripDays, float64(trip.Days))

		if len(trip.Country) == 2 {
			s.CountriesVisited[strings.ToUpper(trip.Country)] = true
		}

		// Lodging addresses contribute to the country set even though they
		// never set the trip's own country field.
		for _, item := range trip.Timeline {
			if item.Type != models.ItemTypeLodging {
				continue
			}
			if code := lodgingCountry(item); code != "" {
				s.CountriesVisited[code] = true
			}
		}

		collectTripDays(trip, allDays, yearDays, monthDays)

		startYear := unknownYear
		if trip.Year != 0 {
			startYear = strconv.Itoa(trip.Year)
			ensureYear(s, startYear).Trips++
		}

		for _, flight := range trip.Flights {
			s.TotalFlights++

			if code, ok := iataToCountry[flight.Origin]; ok {
				s.CountriesVisited[strings.ToUpper(code)] = true
			}
			if code, ok := iataToCountry[flight.Destination]; ok {
				s.CountriesVisited[strings.ToUpper(code)] = true
			}

			// Flights bucket into their own year and month, not the parent
			// trip's: a trip can span a year or month boundary.
			fYear, fMonth := flightBucket(flight, startYear)
			year := ensureYear(s, fYear)
			year.Flights++
			var month *models.MonthStats
			if fMonth != 0 {
				month = ensureMonth(year, fMonth)
				month.Flights++
			}

			if dist := parseDistance(flight.Distance); dist > 0 {
				s.TotalDistanceMi += dist
				year.Distance += dist
				if month != nil {
					month.Distance += dist
				}
			}

			airline := flight.Airline
			if airline == "" {
				airline = "Unknown"
			}
			s.Airlines[airline]++
			if flight.AirlineCode != "" && s.AirlineCodes[airline] == "" {
				s.AirlineCodes[airline] = flight.AirlineCode
			}
			if year.Airlines == nil {
				year.Airlines = make(map[string]int)
			}
			year.Airlines[airline]++
		}
	}

	// Finalize day counts from the deduplicated sets.
	s.TotalDays = len(allDays)
	for year, days := range yearDays {
		ensureYear(s, year).Days = len(days)
	}
	for key, days := range monthDays {
		yearKey, monthKey, _ := strings.Cut(key, "-")
		monthNum, err := strconv.Atoi(monthKey)
		if err != nil {
			continue
		}
		ensureMonth(ensureYear(s, yearKey), monthNum).Days = len(days)
	}

	s.UniqueCountries = sortedKeys(s.CountriesVisited)
	s.CountriesCount = len(s.CountriesVisited)
	s.AllTravelers = sortedKeys(travelers)
	s.TopAirlines = topAirlines(s.Airlines, 10)

	s.AvgTripDays = Mean(tripDays)
	s.MedianTripDays = Median(tripDays)
	s.LongestTripDays = int(Max(tripDays))

	return s
}

// collectTripDays adds every calendar day of the trip's inclusive interval to
// the all-time, per-year and per-month sets. Invalid intervals are skipped,
// never fatal.
func collectTripDays(trip models.Trip, allDays map[string]bool, yearDays, monthDays map[string]map[string]bool) {
	start, err := time.Parse("2006-01-02", trip.StartDate)
	if err != nil {
		return
	}
	end, err := time.Parse("2006-01-02", trip.EndDate)
	if err != nil {
		return
	}
	if end.Before(start) {
		log.Printf("Skipping day interval for trip %q: end %s before start %s", trip.DisplayName, trip.EndDate, trip.StartDate)
		return
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")
		year := day.Format("2006")
		month := day.Format("2006-1")

		allDays[date] = true
		if yearDays[year] == nil {
			yearDays[year] = make(map[string]bool)
		}
		yearDays[year][date] = true
		if monthDays[month] == nil {
			monthDays[month] = make(map[string]bool)
		}
		monthDays[month][date] = true
	}
}

// flightBucket picks the year key and month number for a flight, falling back
// to the parent trip's year only when the flight has no date of its own.
func flightBucket(flight models.TimelineItem, tripYear string) (string, int) {
	if t, err := time.Parse("2006-01-02", flight.Start.Date); err == nil {
		return strconv.Itoa(t.Year()), int(t.Month())
	}
	return tripYear, 0
}

// lodgingCountry resolves the country of a lodging item from its structured
// address, preferring the source-cased Address block.
func lodgingCountry(item models.TimelineItem) string {
	for _, key := range []string{"Address", "address"} {
		if addr, ok := item.Details[key].(map[string]any); ok {
			if country, ok := addr["country"].(string); ok {
				if code := countries.Resolve(country); code != "" {
					return code
				}
			}
		}
	}
	return ""
}

// parseDistance extracts the numeric prefix of a distance display string:
// "1,234 mi" -> 1234. Anything non-numeric contributes 0.
func parseDistance(distance string) float64 {
	token := strings.ReplaceAll(distance, ",", "")
	if i := strings.IndexByte(token, ' '); i >= 0 {
		token = token[:i]
	}

	end := 0
	for end < len(token) {
		c := token[end]
		if (c < '0' || c > '9') && c != '.' && !(end == 0 && (c == '-' || c == '+')) {
			break
		}
		end++
	}

	value, err := strconv.ParseFloat(token[:end], 64)
	if err != nil {
		return 0
	}
	return value
}

func ensureYear(s *models.Stats, year string) *models.YearStats {
	if y, ok := s.Years[year]; ok {
		return y
	}
	y := &models.YearStats{Months: make(map[int]*models.MonthStats)}
	s.Years[year] = y
	return y
}

func ensureMonth(year *models.YearStats, month int) *models.MonthStats {
	if m, ok := year.Months[month]; ok {
		return m
	}
	m := &models.MonthStats{}
	year.Months[month] = m
	return m
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// topAirlines ranks airlines by flight count, ties broken by name so the
// ranking is deterministic.
func topAirlines(airlines map[string]int, limit int) []models.AirlineCount {
	ranked := make([]models.AirlineCount, 0, len(airlines))
	for name, count := range airlines {
		ranked = append(ranked, models.AirlineCount{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
