package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	points := []Coordinate{
		{Latitude: 0, Longitude: 0},
		{Latitude: 25.9135505, Longitude: -100.2418437},
		{Latitude: -33.8688, Longitude: 151.2093},
	}
	for _, p := range points {
		require.Zero(t, DistanceKm(p, p))
	}
}

func TestDistanceKm_NearbyPoint(t *testing.T) {
	store := Coordinate{Latitude: 25.9135505, Longitude: -100.2418437}
	user := Coordinate{Latitude: 25.92, Longitude: -100.24}

	d := DistanceKm(store, user)
	require.InDelta(t, 0.9, d, 0.1)
}

func TestDistanceKm_FarPoint(t *testing.T) {
	store := Coordinate{Latitude: 25.9135505, Longitude: -100.2418437}
	user := Coordinate{Latitude: 25.5, Longitude: -99.5}

	require.Greater(t, DistanceKm(store, user), 5.0)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := Coordinate{Latitude: 25.9135505, Longitude: -100.2418437}
	b := Coordinate{Latitude: 19.4326, Longitude: -99.1332}

	require.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-9)
}

func TestDistanceKm_NaNPropagates(t *testing.T) {
	a := Coordinate{Latitude: math.NaN(), Longitude: 0}
	b := Coordinate{Latitude: 0, Longitude: 0}

	require.True(t, math.IsNaN(DistanceKm(a, b)))
}
