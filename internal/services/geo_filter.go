package services

import (
	"math"
)

// earthRadiusMeters is the mean Earth radius used for great-circle
// distances, matching the meter semantics of geography-type radius
// queries.
const earthRadiusMeters = 6371000.0

type GeoFilterKind int

const (
	// GeoFilterNone applies no geographic restriction.
	GeoFilterNone GeoFilterKind = iota
	// GeoFilterRadius restricts to points within Radius meters of the center.
	GeoFilterRadius
	// GeoFilterBBox restricts to points inside a closed lat/lon rectangle.
	GeoFilterBBox
)

// GeoParams carries the raw optional location parameters of a search
// request. Nil means the parameter was not supplied.
type GeoParams struct {
	Latitude   *float64
	Longitude  *float64
	Radius     *float64
	BBoxMinLat *float64
	BBoxMinLon *float64
	BBoxMaxLat *float64
	BBoxMaxLon *float64
}

// GeoFilter is the tagged result of the selection rule: exactly one of
// the three kinds, with only the fields of that kind populated.
type GeoFilter struct {
	Kind GeoFilterKind

	// Radius mode
	CenterLat float64
	CenterLon float64
	Radius    float64

	// BBox mode
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// NewGeoFilter applies the single selection rule for geographic
// filtering. Radius mode wins when both a radius and a complete
// bounding box are supplied. An incomplete bounding box (fewer than
// four bounds) yields no geo filter rather than an error; legacy
// behavior kept deliberately.
func NewGeoFilter(p GeoParams) GeoFilter {
	if p.Latitude != nil && p.Longitude != nil && p.Radius != nil && *p.Radius > 0 {
		return GeoFilter{
			Kind:      GeoFilterRadius,
			CenterLat: *p.Latitude,
			CenterLon: *p.Longitude,
			Radius:    *p.Radius,
		}
	}

	if p.BBoxMinLat != nil && p.BBoxMinLon != nil && p.BBoxMaxLat != nil && p.BBoxMaxLon != nil {
		return GeoFilter{
			Kind:   GeoFilterBBox,
			MinLat: *p.BBoxMinLat,
			MinLon: *p.BBoxMinLon,
			MaxLat: *p.BBoxMaxLat,
			MaxLon: *p.BBoxMaxLon,
		}
	}

	return GeoFilter{Kind: GeoFilterNone}
}

// Matches reports whether a point satisfies the filter. GeoFilterNone
// matches everything.
func (f GeoFilter) Matches(lat, lon float64) bool {
	switch f.Kind {
	case GeoFilterRadius:
		return HaversineMeters(f.CenterLat, f.CenterLon, lat, lon) <= f.Radius
	case GeoFilterBBox:
		return lat >= f.MinLat && lat <= f.MaxLat &&
			lon >= f.MinLon && lon <= f.MaxLon
	default:
		return true
	}
}

// HaversineMeters returns the great-circle distance between two
// WGS84 points in meters.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}
