package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance_SamePoint(t *testing.T) {
	d := HaversineDistance(-6.2, 106.816666, -6.2, 106.816666)
	assert.Equal(t, 0.0, d)
}

func TestHaversineDistance_Symmetric(t *testing.T) {
	d1 := HaversineDistance(-6.2, 106.816666, -6.914744, 107.609810)
	d2 := HaversineDistance(-6.914744, 107.609810, -6.2, 106.816666)
	assert.InDelta(t, d1, d2, 0.000001)
}

func TestHaversineDistance_OneDegreeLatitude(t *testing.T) {
	// One degree of latitude is about 111.19 km on a spherical Earth.
	d := HaversineDistance(0, 0, 1, 0)
	assert.InDelta(t, 111194.9, d, 1.0)
}

func TestWithinRadius(t *testing.T) {
	center := struct{ lat, lon float64 }{-6.2, 106.816666}

	within, d := WithinRadius(center.lat, center.lon, center.lat, center.lon, 100)
	assert.True(t, within)
	assert.Equal(t, 0.0, d)

	// Roughly 111 meters north of the center.
	within, d = WithinRadius(center.lat+0.001, center.lon, center.lat, center.lon, 100)
	assert.False(t, within)
	assert.Greater(t, d, 100.0)

	within, _ = WithinRadius(center.lat+0.001, center.lon, center.lat, center.lon, 150)
	assert.True(t, within)
}

func TestWithinRadius_BoundaryIsInclusive(t *testing.T) {
	d := HaversineDistance(0, 0, 0.0005, 0)
	within, got := WithinRadius(0.0005, 0, 0, 0, d)
	assert.True(t, within)
	assert.Equal(t, d, got)
}
