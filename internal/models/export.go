package models

// ExportBundleVersion is bumped when the bundle layout changes.
const ExportBundleVersion = 1

// ExportBundle wraps the raw source document together with the manual
// country overrides so a later re-import restores both. The Marker field
// distinguishes a bundled export from a plain source export.
type ExportBundle struct {
	Marker     bool           `json:"_tripStatsExport"`
	Version    int            `json:"version"`
	ExportedAt string         `json:"exportedAt"`
	RawData    map[string]any `json:"rawData"`

	// ManualVisitedCountries stores only disagreements with automation:
	// true forces a country in, false forces it out.
	ManualVisitedCountries map[string]bool `json:"manualVisitedCountries"`
}

// IsExportBundle reports whether a decoded document is a bundled export
// rather than a plain source export.
func IsExportBundle(doc map[string]any) bool {
	marker, _ := doc["_tripStatsExport"].(bool)
	_, hasRaw := doc["rawData"].(map[string]any)
	return marker && hasRaw
}

// CountryStatus is one row of the by-continent country listing.
type CountryStatus struct {
	ISO       string `json:"iso"`
	Name      string `json:"name"`
	Continent string `json:"continent"`
	Visited   bool   `json:"visited"`   // final state after overrides
	Automated bool   `json:"automated"` // state derived from the data alone
}
