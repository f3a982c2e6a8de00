// Package overrides reconciles manual visited-country corrections with the
// automatically derived country set. The override map stores only
// disagreements with automation: true forces a country in, false forces it
// out, and an absent entry leaves the automated value alone.
package overrides

import (
	"sort"

	"github.com/tripfolio/tripstats-backend-go/internal/models"
)

// Apply layers the override map onto freshly aggregated stats and recomputes
// the derived country views. Stats must come straight from the aggregator;
// Apply is not idempotent-safe over already-reconciled values when an
// override is later removed.
func Apply(s *models.Stats, manual map[string]bool) {
	if s == nil {
		return
	}
	for code, visited := range manual {
		if visited {
			s.CountriesVisited[code] = true
		} else {
			delete(s.CountriesVisited, code)
		}
	}

	unique := make([]string, 0, len(s.CountriesVisited))
	for code := range s.CountriesVisited {
		unique = append(unique, code)
	}
	sort.Strings(unique)
	s.UniqueCountries = unique
	s.CountriesCount = len(unique)
}

// Toggle flips a country's visited state and returns the override map's next
// state for it. When the flipped state agrees with automation the entry is
// removed entirely, so the map never accumulates redundant entries and
// toggling twice restores it exactly.
//
// The returned visited flag is the country's new final state; present
// reports whether an override entry remains in the map.
func Toggle(manual map[string]bool, code string, currentlyVisited, automatedVisited bool) (visited, present bool) {
	next := !currentlyVisited
	if next == automatedVisited {
		delete(manual, code)
		return next, false
	}
	manual[code] = next
	return next, true
}
