package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fp(v float64) *float64 { return &v }

func TestNewGeoFilterRadiusMode(t *testing.T) {
	f := NewGeoFilter(GeoParams{
		Latitude:  fp(55.7558),
		Longitude: fp(37.6173),
		Radius:    fp(1000),
	})
	assert.Equal(t, GeoFilterRadius, f.Kind)
	assert.Equal(t, 55.7558, f.CenterLat)
	assert.Equal(t, 37.6173, f.CenterLon)
	assert.Equal(t, 1000.0, f.Radius)
}

func TestNewGeoFilterRadiusTakesPrecedenceOverBBox(t *testing.T) {
	f := NewGeoFilter(GeoParams{
		Latitude:   fp(55),
		Longitude:  fp(37),
		Radius:     fp(500),
		BBoxMinLat: fp(54),
		BBoxMinLon: fp(36),
		BBoxMaxLat: fp(56),
		BBoxMaxLon: fp(38),
	})
	assert.Equal(t, GeoFilterRadius, f.Kind)
}

func TestNewGeoFilterBBoxMode(t *testing.T) {
	f := NewGeoFilter(GeoParams{
		BBoxMinLat: fp(54),
		BBoxMinLon: fp(36),
		BBoxMaxLat: fp(56),
		BBoxMaxLon: fp(38),
	})
	assert.Equal(t, GeoFilterBBox, f.Kind)
}

func TestNewGeoFilterIncompleteBBoxIsNoOp(t *testing.T) {
	// 3 of 4 bounds: legacy behavior applies no geo filter at all.
	f := NewGeoFilter(GeoParams{
		BBoxMinLat: fp(54),
		BBoxMinLon: fp(36),
		BBoxMaxLat: fp(56),
	})
	assert.Equal(t, GeoFilterNone, f.Kind)
	assert.True(t, f.Matches(0, 0))
}

func TestNewGeoFilterNoParams(t *testing.T) {
	f := NewGeoFilter(GeoParams{})
	assert.Equal(t, GeoFilterNone, f.Kind)
}

func TestNewGeoFilterNonPositiveRadius(t *testing.T) {
	f := NewGeoFilter(GeoParams{
		Latitude:  fp(55),
		Longitude: fp(37),
		Radius:    fp(0),
	})
	assert.Equal(t, GeoFilterNone, f.Kind)

	f = NewGeoFilter(GeoParams{
		Latitude:  fp(55),
		Longitude: fp(37),
		Radius:    fp(-100),
	})
	assert.Equal(t, GeoFilterNone, f.Kind)
}

func TestRadiusMatchBoundary(t *testing.T) {
	center := [2]float64{55.7558, 37.6173}
	point := [2]float64{55.7658, 37.6173}

	distance := HaversineMeters(center[0], center[1], point[0], point[1])

	inside := NewGeoFilter(GeoParams{
		Latitude:  fp(center[0]),
		Longitude: fp(center[1]),
		Radius:    fp(distance + 1),
	})
	assert.True(t, inside.Matches(point[0], point[1]))

	// A point just beyond the radius is excluded.
	outside := NewGeoFilter(GeoParams{
		Latitude:  fp(center[0]),
		Longitude: fp(center[1]),
		Radius:    fp(distance - 1),
	})
	assert.False(t, outside.Matches(point[0], point[1]))
}

func TestBBoxMatchClosedRectangle(t *testing.T) {
	f := NewGeoFilter(GeoParams{
		BBoxMinLat: fp(54),
		BBoxMinLon: fp(36),
		BBoxMaxLat: fp(56),
		BBoxMaxLon: fp(38),
	})

	assert.True(t, f.Matches(55, 37))
	// Boundary points belong to the closed rectangle.
	assert.True(t, f.Matches(54, 36))
	assert.True(t, f.Matches(56, 38))

	assert.False(t, f.Matches(53.9999, 37))
	assert.False(t, f.Matches(55, 38.0001))
}

func TestHaversineMeters(t *testing.T) {
	// Distance to itself is zero.
	assert.Equal(t, 0.0, HaversineMeters(55.7558, 37.6173, 55.7558, 37.6173))

	// One degree of latitude is roughly 111 km.
	d := HaversineMeters(55, 37, 56, 37)
	assert.InDelta(t, 111195, d, 500)
}
