package geo_test

import (
	"github.com/paulmach/orb"
	"github.com/zhytomyr-tourism/internal/domain"
)

// Упрощенные контуры: западный и восточный районы с общей границей по 28.1
func testDistricts() []domain.District {
	return []domain.District{
		{
			ID:      "west",
			Name:    "West",
			AreaKm2: 100,
			Boundary: orb.Ring{
				{27.0, 50.0}, {28.1, 50.0}, {28.1, 51.0}, {27.0, 51.0}, {27.0, 50.0},
			},
		},
		{
			ID:      "east",
			Name:    "East",
			AreaKm2: 200,
			Boundary: orb.Ring{
				{28.1, 50.0}, {29.5, 50.0}, {29.5, 51.0}, {28.1, 51.0}, {28.1, 50.0},
			},
		},
	}
}
