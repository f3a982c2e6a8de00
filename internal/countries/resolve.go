// Package countries resolves free-text location strings to ISO 3166-1
// alpha-2 codes using a static alias table. It is a best-effort heuristic:
// ambiguous names resolve to whichever table entry is scanned first.
package countries

import (
	"regexp"
	"strings"
)

var trailingCode = regexp.MustCompile(`[\s,]([a-zA-Z]{2})$`)

// Resolve maps a location string ("Oslo, Norway", "Paris, FR", "DEU", "nl")
// to an alpha-2 code. Returns "" when the text cannot be resolved; it never
// fails for any input.
func Resolve(text string) string {
	clean := strings.ToLower(strings.TrimSpace(text))
	if clean == "" {
		return ""
	}

	clean = strings.TrimPrefix(clean, "the ")

	// Already an alpha-2 code.
	if len(clean) == 2 && isASCIILetter(clean[0]) && isASCIILetter(clean[1]) {
		return strings.ToUpper(clean)
	}

	// Full name or ISO3 code.
	if code, ok := byName[clean]; ok {
		return code
	}

	// Trailing 2-letter code, e.g. "Paris, FR" or "London GB".
	if m := trailingCode.FindStringSubmatch(clean); m != nil {
		return strings.ToUpper(m[1])
	}

	// Any known name as a whole word inside the string, e.g. "Oslo, Norway",
	// "Norway (Europe)", "France - Paris". First table entry wins.
	for _, e := range Table {
		idx := strings.Index(clean, e.Name)
		if idx < 0 {
			continue
		}
		before := byte(' ')
		if idx > 0 {
			before = clean[idx-1]
		}
		after := byte(' ')
		if end := idx + len(e.Name); end < len(clean) {
			after = clean[end]
		}
		if !isASCIILetter(before) && !isASCIILetter(after) {
			return e.Code
		}
	}

	return ""
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
