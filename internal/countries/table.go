package countries

// Entry maps a lower-case country name, native spelling, or ISO3 code to its
// ISO 3166-1 alpha-2 code. Entries are scanned in declaration order for the
// substring fallback in Resolve, so the slice order is part of the contract.
type Entry struct {
	Name string
	Code string
}

// Table lists the known country names and aliases. Not a full gazetteer —
// it covers the names that actually show up in itinerary exports.
var Table = []Entry{
	{"france", "FR"},
	{"frans", "FR"},
	{"united kingdom", "GB"},
	{"uk", "GB"},
	{"great britain", "GB"},
	{"united states", "US"},
	{"usa", "US"},
	{"germany", "DE"},
	{"deutschland", "DE"},
	{"spain", "ES"},
	{"españa", "ES"},
	{"italy", "IT"},
	{"italia", "IT"},
	{"brazil", "BR"},
	{"brasil", "BR"},
	{"mexico", "MX"},
	{"méxico", "MX"},
	{"canada", "CA"},
	{"australia", "AU"},
	{"china", "CN"},
	{"japan", "JP"},
	{"india", "IN"},
	{"netherlands", "NL"},
	{"nederland", "NL"},
	{"switzerland", "CH"},
	{"schweiz", "CH"},
	{"suisse", "CH"},
	{"belgium", "BE"},
	{"belgië", "BE"},
	{"belgique", "BE"},
	{"portugal", "PT"},
	{"austria", "AT"},
	{"österreich", "AT"},
	{"sweden", "SE"},
	{"sverige", "SE"},
	{"norway", "NO"},
	{"norge", "NO"},
	{"denmark", "DK"},
	{"danmark", "DK"},
	{"finland", "FI"},
	{"suomi", "FI"},
	{"ireland", "IE"},
	{"éire", "IE"},
	{"argentina", "AR"},
	{"chile", "CL"},
	{"colombia", "CO"},
	{"peru", "PE"},
	{"russia", "RU"},
	{"south africa", "ZA"},
	{"new zealand", "NZ"},
	{"singapore", "SG"},
	{"thailand", "TH"},
	{"united arab emirates", "AE"},
	{"uae", "AE"},
	{"turkey", "TR"},
	{"türkiye", "TR"},
	{"greece", "GR"},
	{"hellas", "GR"},
	{"poland", "PL"},
	{"polska", "PL"},
	{"czech republic", "CZ"},
	{"czechia", "CZ"},
	{"hungary", "HU"},
	{"israel", "IL"},
	{"egypt", "EG"},
	{"morocco", "MA"},

	// ISO3 to ISO2 fallback
	{"fra", "FR"},
	{"nor", "NO"},
	{"gbr", "GB"},
	{"deu", "DE"},
	{"esp", "ES"},
	{"ita", "IT"},
	{"can", "CA"},
	{"aus", "AU"},
	{"jpn", "JP"},
	{"chn", "CN"},
	{"ind", "IN"},
	{"nld", "NL"},
	{"che", "CH"},
	{"bel", "BE"},
	{"prt", "PT"},
	{"aut", "AT"},
	{"swe", "SE"},
	{"dnk", "DK"},
	{"fin", "FI"},
	{"irl", "IE"},
	{"tha", "TH"},
	{"tur", "TR"},
}

// byName is the exact-match index over Table. When two entries share a name
// (none do today) the first declaration wins.
var byName = func() map[string]string {
	m := make(map[string]string, len(Table))
	for _, e := range Table {
		if _, ok := m[e.Name]; !ok {
			m[e.Name] = e.Code
		}
	}
	return m
}()
