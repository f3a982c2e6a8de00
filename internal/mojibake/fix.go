// Package mojibake repairs UTF-8 text that was mis-decoded as Latin-1
// somewhere upstream of the export (e.g. "Ã©" where the source had "é").
package mojibake

import "unicode/utf8"

// FixString re-interprets the code points of s as raw bytes and re-decodes
// them as UTF-8. If any code point is above 0xFF, or the re-interpreted bytes
// are not valid UTF-8, s was not mojibake and is returned unchanged.
func FixString(s string) string {
	buf := make([]byte, 0, len(s))
	multi := false
	for _, r := range s {
		if r > 0xFF {
			return s
		}
		if r > 0x7F {
			multi = true
		}
		buf = append(buf, byte(r))
	}

	// Pure ASCII round-trips to itself.
	if !multi {
		return s
	}

	if !utf8.Valid(buf) {
		return s
	}
	return string(buf)
}

// Fix walks an arbitrarily nested JSON-shaped value (strings, slices, maps,
// scalars) and repairs every string it contains. Non-string scalars pass
// through unchanged. The input is never mutated.
func Fix(v any) any {
	switch val := v.(type) {
	case string:
		return FixString(val)
	case []any:
		fixed := make([]any, len(val))
		for i, item := range val {
			fixed[i] = Fix(item)
		}
		return fixed
	case map[string]any:
		fixed := make(map[string]any, len(val))
		for k, item := range val {
			fixed[k] = Fix(item)
		}
		return fixed
	default:
		return v
	}
}
