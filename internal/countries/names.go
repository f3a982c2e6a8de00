package countries

import "strings"

// canonicalName holds the first table alias declared for each code, which by
// table convention is the common English name.
var canonicalName = func() map[string]string {
	m := make(map[string]string, len(Table))
	for _, e := range Table {
		if _, ok := m[e.Code]; !ok && len(e.Name) > 3 {
			m[e.Code] = e.Name
		}
	}
	return m
}()

// NameOf returns a display name for an alpha-2 code. Codes without a table
// alias fall back to the code itself.
func NameOf(code string) string {
	name, ok := canonicalName[code]
	if !ok {
		return code
	}
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
