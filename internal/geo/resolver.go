package geo

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/zhytomyr-tourism/internal/domain"
)

type indexedDistrict struct {
	district domain.District
	bound    orb.Bound
}

// Resolver - определение района по точке. После создания только читается,
// поэтому безопасен для одновременного использования.
type Resolver struct {
	districts []indexedDistrict
}

// NewResolver проверяет районы и строит резолвер.
// Любая ошибка конфигурации фатальна: такой набор районов использовать нельзя.
func NewResolver(districts []domain.District) (*Resolver, error) {
	if len(districts) == 0 {
		return nil, fmt.Errorf("%w: no districts configured", ErrInvalidDistrict)
	}

	seen := make(map[string]struct{}, len(districts))
	indexed := make([]indexedDistrict, 0, len(districts))

	for _, d := range districts {
		normalized, err := ValidateDistrict(d)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[normalized.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidDistrict, normalized.ID)
		}
		seen[normalized.ID] = struct{}{}

		indexed = append(indexed, indexedDistrict{
			district: normalized,
			bound:    normalized.Boundary.Bound(),
		})
	}

	return &Resolver{districts: indexed}, nil
}

// ResolveDistrict возвращает идентификатор района, содержащего точку.
// Районы проверяются в объявленном порядке, побеждает первый. Точка на ребре
// считается внутренней, поэтому на общей границе выигрывает более ранний район.
// Если ни один район не содержит точку, возвращается ("", false, nil).
func (r *Resolver) ResolveDistrict(p domain.Point) (string, bool, error) {
	if err := ValidatePoint(p); err != nil {
		return "", false, err
	}

	pt := p.Orb()
	for i := range r.districts {
		d := &r.districts[i]
		if !d.bound.Contains(pt) {
			continue
		}
		if planar.RingContains(d.district.Boundary, pt) {
			return d.district.ID, true, nil
		}
	}

	return "", false, nil
}

// Districts возвращает копию нормализованных районов в объявленном порядке
func (r *Resolver) Districts() []domain.District {
	result := make([]domain.District, len(r.districts))
	for i, d := range r.districts {
		result[i] = d.district
	}
	return result
}

// District возвращает район по идентификатору
func (r *Resolver) District(id string) (domain.District, bool) {
	for _, d := range r.districts {
		if d.district.ID == id {
			return d.district, true
		}
	}
	return domain.District{}, false
}
