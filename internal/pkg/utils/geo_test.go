package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		expected bool
	}{
		{"zhytomyr", 50.2547, 28.6587, true},
		{"poles and antimeridian", -90, 180, true},
		{"latitude out of range", 999, 28.6, false},
		{"longitude out of range", 50.2, -180.5, false},
		{"nan latitude", math.NaN(), 28.6, false},
		{"infinite longitude", 50.2, math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateCoordinates(tt.lat, tt.lon))
		})
	}
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 10.0, Round1(10.0))
	assert.Equal(t, 33.3, Round1(100.0/3))
	assert.Equal(t, 66.7, Round1(200.0/3))
	assert.Equal(t, 12.3, Round1(12.25))
	assert.Equal(t, 0.0, Round1(0))
}

func TestHaversineDistance(t *testing.T) {
	// Житомир - Бердичев, около 40 км
	d := HaversineDistance(50.2547, 28.6587, 49.8993, 28.5855)
	assert.InDelta(t, 40, d, 2)
	assert.Equal(t, 0.0, HaversineDistance(50, 28, 50, 28))
}
