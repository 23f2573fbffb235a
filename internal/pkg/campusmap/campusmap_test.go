package campusmap

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		want Category
	}{
		{"Hunter Gym", CategorySports},
		{"Pool", CategorySports},
		{"Turf/Football-Field", CategorySports},
		{"Library", CategoryCommon},
		{"Canteen", CategoryCommon},
		{"Aurora Center", CategoryCommon},
		{"IT Office", CategoryOffice},
		{"Career Office", CategoryOffice},
		{"A Block", CategoryBlock},
		{"Dance Hall", CategoryBlock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.name))
		})
	}
}

func TestRender_CampusTable(t *testing.T) {
	r := NewLeafletRenderer(DefaultOptions)

	artifact, err := r.Render(Campus, SchoolCenter)
	require.NoError(t, err)

	require.Len(t, artifact.Markers, len(Campus))
	assert.Equal(t, SchoolCenter, artifact.Center)
	assert.Equal(t, 18, artifact.Zoom)
	assert.Equal(t, [2]int{80, 80}, artifact.Padding)

	minLat, minLng := math.Inf(1), math.Inf(1)
	maxLat, maxLng := math.Inf(-1), math.Inf(-1)
	for _, loc := range Campus {
		minLat = math.Min(minLat, loc.Position.Lat)
		minLng = math.Min(minLng, loc.Position.Lng)
		maxLat = math.Max(maxLat, loc.Position.Lat)
		maxLng = math.Max(maxLng, loc.Position.Lng)
	}
	assert.Equal(t, LatLng{Lat: minLat, Lng: minLng}, artifact.Bounds.SouthWest)
	assert.Equal(t, LatLng{Lat: maxLat, Lng: maxLng}, artifact.Bounds.NorthEast)

	for i, m := range artifact.Markers {
		assert.Equal(t, Campus[i].Name, m.Name)
		assert.Equal(t, Campus[i].Name[:1], m.Label)
		assert.Equal(t, Categorize(m.Name).Color(), m.Color)
	}

	html := string(artifact.HTML)
	assert.True(t, strings.Contains(html, `id="campus-map"`))
	assert.True(t, strings.Contains(html, "fitBounds"))
	assert.True(t, strings.Contains(html, "Career Office"))
}

func TestFitBounds(t *testing.T) {
	assert.Equal(t, Bounds{}, FitBounds(nil))

	b := FitBounds([]Location{
		{Name: "a", Position: LatLng{Lat: 1, Lng: 5}},
		{Name: "b", Position: LatLng{Lat: -2, Lng: 7}},
		{Name: "c", Position: LatLng{Lat: 0, Lng: 6}},
	})
	assert.Equal(t, LatLng{Lat: -2, Lng: 5}, b.SouthWest)
	assert.Equal(t, LatLng{Lat: 1, Lng: 7}, b.NorthEast)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "K", Label("K5-K6 Block"))
	assert.Equal(t, "", Label(""))
	assert.Equal(t, "Ā", Label("Āwhina"))
}
