// Package geo определяет, в каком административном районе находится точка.
package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/zhytomyr-tourism/internal/domain"
	"github.com/zhytomyr-tourism/internal/pkg/utils"
)

var (
	// ErrInvalidCoordinates - координаты не конечны или вне допустимого диапазона
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrInvalidDistrict - ошибка конфигурации района (контур, площадь, идентификатор)
	ErrInvalidDistrict = errors.New("invalid district")
)

// ValidatePoint проверяет координаты. Значения вне диапазона не обрезаются.
func ValidatePoint(p domain.Point) error {
	if !utils.ValidateCoordinates(p.Lat, p.Lng) {
		return fmt.Errorf("%w: lat=%v lng=%v", ErrInvalidCoordinates, p.Lat, p.Lng)
	}
	return nil
}

// ValidateDistrict проверяет контур и площадь района.
// Незамкнутый контур замыкается, возвращается нормализованная копия.
func ValidateDistrict(d domain.District) (domain.District, error) {
	if d.ID == "" {
		return d, fmt.Errorf("%w: empty id", ErrInvalidDistrict)
	}

	ring := make(orb.Ring, len(d.Boundary))
	copy(ring, d.Boundary)

	for i, v := range ring {
		if !utils.ValidateCoordinates(v.Lat(), v.Lon()) {
			return d, fmt.Errorf("%w: %s: vertex %d out of range: %v", ErrInvalidDistrict, d.ID, i, v)
		}
	}

	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	if distinctVertices(ring) < 3 {
		return d, fmt.Errorf("%w: %s: boundary needs at least 3 distinct vertices", ErrInvalidDistrict, d.ID)
	}

	if d.AreaKm2 == 0 {
		d.AreaKm2 = RingAreaKm2(ring)
	}
	if !(d.AreaKm2 > 0) || math.IsInf(d.AreaKm2, 0) {
		return d, fmt.Errorf("%w: %s: area must be positive, got %v", ErrInvalidDistrict, d.ID, d.AreaKm2)
	}

	d.Boundary = ring
	return d, nil
}

// RingAreaKm2 - площадь контура на сфере в квадратных километрах
func RingAreaKm2(ring orb.Ring) float64 {
	return math.Abs(orbgeo.Area(orb.Polygon{ring})) / 1e6
}

func distinctVertices(ring orb.Ring) int {
	seen := make(map[orb.Point]struct{}, len(ring))
	for _, v := range ring {
		seen[v] = struct{}{}
	}
	return len(seen)
}
