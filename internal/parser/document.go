package parser

import "strconv"

// Accessors over the dynamic document shape. The export is loosely
// structured: fields may be absent, a collection may arrive as a single
// object instead of an array, and scalars may have surprising types. These
// helpers normalize everything to zero-or-more sequences and zero-value
// scalars right at the boundary so the parsing logic never branches on shape.

// asMap returns v as an object, or nil when it is anything else.
func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// asSlice returns v as a sequence: arrays pass through, a single object is
// wrapped, nil and scalars yield an empty sequence.
func asSlice(v any) []any {
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		return val
	case map[string]any:
		return []any{val}
	default:
		return nil
	}
}

// asString returns v as a string. JSON numbers are formatted rather than
// dropped because some exports deliver flight numbers unquoted.
func asString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}

// nonEmptyMaps filters a sequence down to its non-empty objects.
func nonEmptyMaps(items []any) []map[string]any {
	var out []map[string]any
	for _, item := range items {
		if m := asMap(item); len(m) > 0 {
			out = append(out, m)
		}
	}
	return out
}

// fieldString is asString over a map lookup.
func fieldString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	return asString(m[key])
}
