package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripfolio/tripstats-backend-go/internal/models"
)

func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		name string
		obj  map[string]any
		want string
	}{
		{
			name: "room type wins",
			obj:  map[string]any{"room_type": "Suite", "display_name": "Grand Central"},
			want: models.ItemTypeLodging,
		},
		{
			name: "hotel in display name",
			obj:  map[string]any{"display_name": "Park Hotel Vitznau"},
			want: models.ItemTypeLodging,
		},
		{
			name: "lodging beats car keywords",
			obj:  map[string]any{"room_type": "Twin", "display_name": "Car Rental Hotel Deal"},
			want: models.ItemTypeLodging,
		},
		{
			name: "car rental by display name",
			obj:  map[string]any{"display_name": "Car Rental Pickup"},
			want: models.ItemTypeCar,
		},
		{
			name: "car rental by supplier",
			obj:  map[string]any{"display_name": "Compact", "supplier_name": "SIXT Norge"},
			want: models.ItemTypeCar,
		},
		{
			name: "rail by display name",
			obj:  map[string]any{"display_name": "Train to Bergen"},
			want: models.ItemTypeRail,
		},
		{
			name: "default activity",
			obj:  map[string]any{"display_name": "Fjord Safari"},
			want: models.ItemTypeActivity,
		},
		{
			name: "empty object",
			obj:  map[string]any{},
			want: models.ItemTypeActivity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.obj))
		})
	}
}

func TestHasSegmentData(t *testing.T) {
	assert.False(t, hasSegmentData(map[string]any{}))
	assert.False(t, hasSegmentData(map[string]any{"Segment": nil}))
	assert.False(t, hasSegmentData(map[string]any{"Segment": map[string]any{}}))
	assert.False(t, hasSegmentData(map[string]any{"Segment": []any{}}))
	assert.True(t, hasSegmentData(map[string]any{"Segment": map[string]any{"duration": "1:00"}}))
	assert.True(t, hasSegmentData(map[string]any{"Segment": []any{map[string]any{}}}))
}

func TestBuildTimelineEmptySegmentsBecomeBooking(t *testing.T) {
	// A flight booking whose segments are all empty objects keeps a generic
	// timeline entry instead of producing flights.
	objects := []any{
		map[string]any{
			"display_name":  "Flight Booking",
			"Segment":       []any{map[string]any{}},
			"StartDateTime": map[string]any{"date": "2024-02-01"},
		},
	}

	timeline, flights := buildTimeline(map[string]any{}, objects)
	assert.Empty(t, flights)
	if assert.Len(t, timeline, 1) {
		assert.Equal(t, models.ItemTypeFlightBooking, timeline[0].Type)
	}
}
