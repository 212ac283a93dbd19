package geo_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhytomyr-tourism/internal/domain"
	"github.com/zhytomyr-tourism/internal/geo"
)

func TestResolver_ResolveDistrict(t *testing.T) {
	resolver, err := geo.NewResolver(testDistricts())
	require.NoError(t, err)

	tests := []struct {
		name       string
		point      domain.Point
		expectedID string
		found      bool
	}{
		{"inside west", domain.Point{Lat: 50.5, Lng: 27.5}, "west", true},
		{"inside east", domain.Point{Lat: 50.5, Lng: 29.0}, "east", true},
		{"shared edge goes to first declared district", domain.Point{Lat: 50.5, Lng: 28.1}, "west", true},
		{"vertex of east only", domain.Point{Lat: 50.0, Lng: 29.5}, "east", true},
		{"outside all districts", domain.Point{Lat: 50.45, Lng: 30.52}, "", false},
		{"inside bbox band but north of districts", domain.Point{Lat: 51.5, Lng: 28.0}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, found, err := resolver.ResolveDistrict(tt.point)
			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}

func TestResolver_InvalidPoint(t *testing.T) {
	resolver, err := geo.NewResolver(testDistricts())
	require.NoError(t, err)

	points := []domain.Point{
		{Lat: 999, Lng: 28.6},
		{Lat: 50.2, Lng: -181},
		{Lat: math.NaN(), Lng: 28.6},
		{Lat: 50.2, Lng: math.Inf(-1)},
	}

	for _, p := range points {
		id, found, err := resolver.ResolveDistrict(p)
		assert.ErrorIs(t, err, geo.ErrInvalidCoordinates)
		assert.False(t, found)
		assert.Empty(t, id)
	}
}

func TestResolver_Deterministic(t *testing.T) {
	resolver, err := geo.NewResolver(testDistricts())
	require.NoError(t, err)

	points := []domain.Point{
		{Lat: 50.5, Lng: 28.1},
		{Lat: 50.0, Lng: 28.1},
		{Lat: 51.0, Lng: 27.0},
		{Lat: 50.7, Lng: 28.9},
		{Lat: 49.0, Lng: 28.0},
	}

	for _, p := range points {
		firstID, firstFound, firstErr := resolver.ResolveDistrict(p)
		for i := 0; i < 50; i++ {
			id, found, err := resolver.ResolveDistrict(p)
			assert.Equal(t, firstID, id)
			assert.Equal(t, firstFound, found)
			assert.Equal(t, firstErr, err)
		}
	}
}

func TestResolver_NeverDefaultsOutside(t *testing.T) {
	resolver, err := geo.NewResolver(testDistricts())
	require.NoError(t, err)

	// Сетка точек вокруг области, ни одна не попадает в контуры
	for lat := 45.0; lat <= 55.0; lat += 0.25 {
		for lng := 20.0; lng <= 35.0; lng += 0.25 {
			if lat >= 50.0 && lat <= 51.0 && lng >= 27.0 && lng <= 29.5 {
				continue
			}
			id, found, err := resolver.ResolveDistrict(domain.Point{Lat: lat, Lng: lng})
			require.NoError(t, err)
			assert.False(t, found, "lat=%v lng=%v", lat, lng)
			assert.Empty(t, id)
		}
	}
}

func TestNewResolver_ConfigurationErrors(t *testing.T) {
	square := orb.Ring{{28, 50}, {29, 50}, {29, 51}, {28, 51}, {28, 50}}

	tests := []struct {
		name      string
		districts []domain.District
	}{
		{"no districts", nil},
		{"empty id", []domain.District{{ID: "", AreaKm2: 1, Boundary: square}}},
		{"zero area with degenerate ring", []domain.District{{ID: "a", Boundary: orb.Ring{{28, 50}, {28, 50}, {28, 50}}}}},
		{"negative area", []domain.District{{ID: "a", AreaKm2: -5, Boundary: square}}},
		{"nan area", []domain.District{{ID: "a", AreaKm2: math.NaN(), Boundary: square}}},
		{"too few vertices", []domain.District{{ID: "a", AreaKm2: 1, Boundary: orb.Ring{{28, 50}, {29, 50}}}}},
		{"vertex out of range", []domain.District{{ID: "a", AreaKm2: 1, Boundary: orb.Ring{{28, 50}, {29, 50}, {29, 95}, {28, 50}}}}},
		{"duplicate id", []domain.District{
			{ID: "a", AreaKm2: 1, Boundary: square},
			{ID: "a", AreaKm2: 1, Boundary: square},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, err := geo.NewResolver(tt.districts)
			assert.ErrorIs(t, err, geo.ErrInvalidDistrict)
			assert.Nil(t, resolver)
		})
	}
}

func TestNewResolver_NormalizesBoundary(t *testing.T) {
	open := orb.Ring{{28, 50}, {29, 50}, {29, 51}, {28, 51}}
	resolver, err := geo.NewResolver([]domain.District{{ID: "a", Boundary: open}})
	require.NoError(t, err)

	districts := resolver.Districts()
	require.Len(t, districts, 1)
	assert.True(t, districts[0].Boundary.Closed())
	// Площадь вычислена по контуру: около 111 км x 71 км
	assert.InDelta(t, 7900, districts[0].AreaKm2, 300)

	// Исходный контур не изменился
	assert.Len(t, open, 4)
}

func TestResolver_District(t *testing.T) {
	resolver, err := geo.NewResolver(testDistricts())
	require.NoError(t, err)

	d, ok := resolver.District("east")
	assert.True(t, ok)
	assert.Equal(t, 200.0, d.AreaKm2)

	_, ok = resolver.District("missing")
	assert.False(t, ok)
}
