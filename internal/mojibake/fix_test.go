package mojibake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain ascii unchanged",
			in:   "Oslo Airport",
			want: "Oslo Airport",
		},
		{
			name: "empty string",
			in:   "",
			want: "",
		},
		{
			name: "double-decoded e acute",
			in:   "CafÃ©", // "Café" read as Latin-1
			want: "Café",
		},
		{
			name: "double-decoded o umlaut",
			in:   "KÃ¶ln",
			want: "Köln",
		},
		{
			name: "already correct accent left alone",
			in:   "Café",
			want: "Café",
		},
		{
			name: "code points above latin-1 left alone",
			in:   "東京",
			want: "東京",
		},
		{
			name: "stray high byte not valid utf-8 left alone",
			in:   "50° north",
			want: "50° north",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FixString(tt.in))
		})
	}
}

func TestFixNestedStructure(t *testing.T) {
	in := map[string]any{
		"TripData": map[string]any{
			"display_name": "HÃ´tel de Ville",
			"days":         float64(3),
		},
		"Objects": []any{
			map[string]any{"city": "MÃ¼nchen"},
			"SÃ£o Paulo",
			true,
			nil,
		},
	}

	got := Fix(in).(map[string]any)

	data := got["TripData"].(map[string]any)
	assert.Equal(t, "Hôtel de Ville", data["display_name"])
	assert.Equal(t, float64(3), data["days"])

	objects := got["Objects"].([]any)
	assert.Equal(t, "München", objects[0].(map[string]any)["city"])
	assert.Equal(t, "São Paulo", objects[1])
	assert.Equal(t, true, objects[2])
	assert.Nil(t, objects[3])

	// Input is not mutated.
	assert.Equal(t, "HÃ´tel de Ville", in["TripData"].(map[string]any)["display_name"])
}
