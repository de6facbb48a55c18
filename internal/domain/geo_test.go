package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm_SamePoint(t *testing.T) {
	got := HaversineKm(40.7831, -73.9712, 40.7831, -73.9712)
	assert.InDelta(t, 0, got, 1e-9)
}

func TestHaversineKm_ManhattanDistance(t *testing.T) {
	// Upper West Side to Madison Square Garden, около 4 км
	got := HaversineKm(40.7831, -73.9712, 40.7505, -73.9934)
	assert.InDelta(t, 4.1, got, 0.4)
}

func TestHaversineKm_LongDistance(t *testing.T) {
	// Москва - Санкт-Петербург, около 635 км
	got := HaversineKm(55.7558, 37.6173, 59.9343, 30.3351)
	assert.InDelta(t, 635, got, 10)
}

func TestHaversineKm_Symmetric(t *testing.T) {
	ab := HaversineKm(55.7558, 37.6173, 59.9343, 30.3351)
	ba := HaversineKm(59.9343, 30.3351, 55.7558, 37.6173)
	assert.InDelta(t, ab, ba, 1e-9)
}

func TestBusinessSearchFilter_HasCoordinates(t *testing.T) {
	assert.True(t, BusinessSearchFilter{Lat: 40.7, Lng: -73.9}.HasCoordinates())
	assert.False(t, BusinessSearchFilter{}.HasCoordinates())
	assert.False(t, BusinessSearchFilter{Lat: 40.7}.HasCoordinates())
	assert.False(t, BusinessSearchFilter{Lng: -73.9}.HasCoordinates())
}
