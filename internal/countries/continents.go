package countries

// Continents in display order.
var Continents = []string{
	"Europe",
	"Asia",
	"North America",
	"South America",
	"Africa",
	"Oceania",
	"Antarctica",
}

// continentOf maps alpha-2 codes to a continent. Covers the codes the alias
// table can produce plus the common long-haul destinations an IATA lookup
// can contribute.
var continentOf = map[string]string{
	// Europe
	"AT": "Europe", "BE": "Europe", "CH": "Europe", "CZ": "Europe",
	"DE": "Europe", "DK": "Europe", "ES": "Europe", "FI": "Europe",
	"FR": "Europe", "GB": "Europe", "GR": "Europe", "HR": "Europe",
	"HU": "Europe", "IE": "Europe", "IS": "Europe", "IT": "Europe",
	"LU": "Europe", "MT": "Europe", "NL": "Europe", "NO": "Europe",
	"PL": "Europe", "PT": "Europe", "RO": "Europe", "RS": "Europe",
	"RU": "Europe", "SE": "Europe", "SI": "Europe", "SK": "Europe",
	"UA": "Europe",

	// Asia
	"AE": "Asia", "CN": "Asia", "HK": "Asia", "ID": "Asia",
	"IL": "Asia", "IN": "Asia", "JP": "Asia", "KR": "Asia",
	"LK": "Asia", "MY": "Asia", "PH": "Asia", "QA": "Asia",
	"SA": "Asia", "SG": "Asia", "TH": "Asia", "TR": "Asia",
	"TW": "Asia", "VN": "Asia",

	// North America
	"CA": "North America", "CR": "North America", "CU": "North America",
	"DO": "North America", "GT": "North America", "MX": "North America",
	"PA": "North America", "US": "North America",

	// South America
	"AR": "South America", "BO": "South America", "BR": "South America",
	"CL": "South America", "CO": "South America", "EC": "South America",
	"PE": "South America", "UY": "South America", "VE": "South America",

	// Africa
	"EG": "Africa", "KE": "Africa", "MA": "Africa", "NG": "Africa",
	"TN": "Africa", "TZ": "Africa", "ZA": "Africa",

	// Oceania
	"AU": "Oceania", "FJ": "Oceania", "NZ": "Oceania",

	"AQ": "Antarctica",
}

// ContinentOf returns the continent for an alpha-2 code, or "" when the code
// is unknown to the table.
func ContinentOf(code string) string {
	return continentOf[code]
}

// Codes returns every alpha-2 code known to the continent table, in no
// particular order.
func Codes() []string {
	codes := make([]string, 0, len(continentOf))
	for code := range continentOf {
		codes = append(codes, code)
	}
	return codes
}
