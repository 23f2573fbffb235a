// Package campusmap turns the fixed table of campus locations into an
// interactive Leaflet map fragment.
package campusmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"unicode/utf8"
)

// LatLng is a WGS84 coordinate.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is a named point on campus.
type Location struct {
	Name     string
	Position LatLng
}

// Category groups locations for marker colouring.
type Category string

const (
	CategoryBlock  Category = "block"
	CategorySports Category = "sports"
	CategoryCommon Category = "common"
	CategoryOffice Category = "office"
)

var categoryColors = map[Category]string{
	CategoryBlock:  "#00a86b",
	CategorySports: "#ff6b6b",
	CategoryCommon: "#4d79ff",
	CategoryOffice: "#fffc4f",
}

// Color returns the marker colour of c.
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return categoryColors[CategoryBlock]
}

// Categorize infers the category of a location from its name. Checks run in
// order and the first match wins.
func Categorize(name string) Category {
	switch {
	case containsAny(name, "Gym", "Pool", "Turf"):
		return CategorySports
	case containsAny(name, "Library", "Canteen", "Center"):
		return CategoryCommon
	case containsAny(name, "IT Office", "Career Office"):
		return CategoryOffice
	default:
		return CategoryBlock
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Marker is one rendered location.
type Marker struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
	Color    string   `json:"color"`
	Position LatLng   `json:"position"`
}

// Bounds is the south-west / north-east corner pair of a viewport.
type Bounds struct {
	SouthWest LatLng `json:"southWest"`
	NorthEast LatLng `json:"northEast"`
}

// Options control the rendered map.
type Options struct {
	Zoom     int
	Tiles    string
	PaddingX int
	PaddingY int
}

// DefaultOptions match the school's published map.
var DefaultOptions = Options{
	Zoom:     18,
	Tiles:    "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png",
	PaddingX: 80,
	PaddingY: 80,
}

// Artifact is the rendered map, ready to embed in a page.
type Artifact struct {
	Center  LatLng
	Zoom    int
	Markers []Marker
	Bounds  Bounds
	Padding [2]int
	HTML    template.HTML
}

// Renderer builds map artifacts.
type Renderer interface {
	Render(locations []Location, center LatLng) (*Artifact, error)
}

// LeafletRenderer renders maps as a Leaflet script fragment.
type LeafletRenderer struct {
	opts Options
}

// NewLeafletRenderer creates a renderer with opts.
func NewLeafletRenderer(opts Options) *LeafletRenderer {
	return &LeafletRenderer{opts: opts}
}

// FitBounds returns the smallest box containing every location.
func FitBounds(locations []Location) Bounds {
	if len(locations) == 0 {
		return Bounds{}
	}
	first := locations[0].Position
	b := Bounds{SouthWest: first, NorthEast: first}
	for _, loc := range locations[1:] {
		p := loc.Position
		b.SouthWest.Lat = min(b.SouthWest.Lat, p.Lat)
		b.SouthWest.Lng = min(b.SouthWest.Lng, p.Lng)
		b.NorthEast.Lat = max(b.NorthEast.Lat, p.Lat)
		b.NorthEast.Lng = max(b.NorthEast.Lng, p.Lng)
	}
	return b
}

// Label is the single character drawn on a marker.
func Label(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}

// Render places one marker per location and fits the view to all of them.
func (r *LeafletRenderer) Render(locations []Location, center LatLng) (*Artifact, error) {
	markers := make([]Marker, 0, len(locations))
	for _, loc := range locations {
		category := Categorize(loc.Name)
		markers = append(markers, Marker{
			Name:     loc.Name,
			Label:    Label(loc.Name),
			Category: category,
			Color:    category.Color(),
			Position: loc.Position,
		})
	}

	artifact := &Artifact{
		Center:  center,
		Zoom:    r.opts.Zoom,
		Markers: markers,
		Bounds:  FitBounds(locations),
		Padding: [2]int{r.opts.PaddingX, r.opts.PaddingY},
	}

	html, err := r.fragment(artifact)
	if err != nil {
		return nil, err
	}
	artifact.HTML = html
	return artifact, nil
}

type fragmentData struct {
	Tiles string
	Spec  template.JS
}

func (r *LeafletRenderer) fragment(a *Artifact) (template.HTML, error) {
	spec, err := json.Marshal(struct {
		Center  LatLng   `json:"center"`
		Zoom    int      `json:"zoom"`
		Markers []Marker `json:"markers"`
		Bounds  Bounds   `json:"bounds"`
		Padding [2]int   `json:"padding"`
	}{a.Center, a.Zoom, a.Markers, a.Bounds, a.Padding})
	if err != nil {
		return "", fmt.Errorf("failed to encode map spec: %w", err)
	}

	var buf bytes.Buffer
	if err := fragmentTemplate.Execute(&buf, fragmentData{Tiles: r.opts.Tiles, Spec: template.JS(spec)}); err != nil {
		return "", fmt.Errorf("failed to render map: %w", err)
	}
	return template.HTML(buf.String()), nil
}

var fragmentTemplate = template.Must(template.New("map").Parse(`<div id="campus-map" class="campus-map"></div>
<script>
(function () {
  var spec = {{.Spec}};
  var map = L.map("campus-map", {zoomControl: false, attributionControl: false})
    .setView([spec.center.lat, spec.center.lng], spec.zoom);
  L.tileLayer({{.Tiles}}).addTo(map);
  spec.markers.forEach(function (m) {
    var icon = L.divIcon({
      className: "campus-marker",
      html: '<div class="campus-marker-dot" style="background:' + m.color + '">' + m.label + '</div>'
    });
    L.marker([m.position.lat, m.position.lng], {icon: icon}).bindTooltip(m.name).addTo(map);
  });
  map.fitBounds([
    [spec.bounds.southWest.lat, spec.bounds.southWest.lng],
    [spec.bounds.northEast.lat, spec.bounds.northEast.lng]
  ], {padding: spec.padding});
})();
</script>`))
