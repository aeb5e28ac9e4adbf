package domain

import "github.com/tourism-registry/internal/pkg/utils"

// MarkerColor is the visual category of a map marker. The mapping from site
// type is total: every type has exactly one color.
type MarkerColor string

const (
	MarkerGreen  MarkerColor = "green"
	MarkerBlue   MarkerColor = "blue"
	MarkerViolet MarkerColor = "violet"
)

// ColorForType maps a site type to its marker color.
func ColorForType(t SiteType) MarkerColor {
	switch t {
	case SiteTypeWater:
		return MarkerBlue
	case SiteTypeReligious:
		return MarkerViolet
	default:
		return MarkerGreen
	}
}

// Marker is one plotted site on the dashboard map.
type Marker struct {
	SiteID   string      `json:"site_id"`
	Name     string      `json:"name"`
	District District    `json:"district"`
	Type     SiteType    `json:"type"`
	Color    MarkerColor `json:"color"`
	Point    Point       `json:"point"`
	// Fallback is true when the point is the district centroid rather than
	// an explicit coordinate.
	Fallback bool `json:"fallback"`
}

// ResolveMarker derives the marker for a site, applying the resolution
// policy in order: explicit coordinates when both parse to finite non-zero
// values inside the valid range, else the district centroid, else no marker.
// Malformed coordinate strings never error; they fall through.
func ResolveMarker(s *TouristSite) (Marker, bool) {
	m := Marker{
		SiteID:   s.ID,
		Name:     s.Name,
		District: s.District,
		Type:     s.Type,
		Color:    ColorForType(s.Type),
	}

	lat, latOK := utils.ParseCoordinate(s.Latitude)
	lon, lonOK := utils.ParseCoordinate(s.Longitude)
	if latOK && lonOK && utils.ValidateCoordinates(lat, lon) {
		m.Point = Point{Lat: lat, Lon: lon}
		return m, true
	}

	if centroid, ok := s.District.Centroid(); ok {
		m.Point = centroid
		m.Fallback = true
		return m, true
	}

	return Marker{}, false
}

// ResolveMarkers derives markers for a record list, silently skipping sites
// that produce none.
func ResolveMarkers(sites []TouristSite) []Marker {
	markers := make([]Marker, 0, len(sites))
	for i := range sites {
		if m, ok := ResolveMarker(&sites[i]); ok {
			markers = append(markers, m)
		}
	}
	return markers
}
