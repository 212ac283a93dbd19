package aggregation

import (
	"sort"

	"github.com/zhytomyr-tourism/internal/domain"
)

// measuredCategory возвращает измеренные показатели кластера, если они полные и в допустимых границах
func measuredCategory(visits *domain.VisitData, c domain.Category) (domain.VisitMetric, bool) {
	if visits == nil {
		return domain.VisitMetric{}, false
	}
	m, ok := visits.Categories[c]
	if !ok || m.VisitPercentage == nil || m.Popularity == nil {
		return domain.VisitMetric{}, false
	}
	if !inRange(*m.VisitPercentage, 0, 100) || !inRange(*m.Popularity, 0, 10) {
		return domain.VisitMetric{}, false
	}
	return m, true
}

// measuredDistrict возвращает измеренный индекс популярности района в [0, 1]
func measuredDistrict(visits *domain.VisitData, districtID string) (domain.VisitMetric, bool) {
	if visits == nil {
		return domain.VisitMetric{}, false
	}
	m, ok := visits.Districts[districtID]
	if !ok || m.Popularity == nil || !inRange(*m.Popularity, 0, 1) {
		return domain.VisitMetric{}, false
	}
	return m, true
}

// RejectedMetrics перечисляет измеренные значения, отброшенные как неполные или вне диапазона
func RejectedMetrics(visits *domain.VisitData) []string {
	if visits == nil {
		return nil
	}

	var rejected []string
	for _, c := range domain.Categories {
		if _, present := visits.Categories[c]; present {
			if _, ok := measuredCategory(visits, c); !ok {
				rejected = append(rejected, "category:"+string(c))
			}
		}
	}
	for id := range visits.Districts {
		if _, ok := measuredDistrict(visits, id); !ok {
			rejected = append(rejected, "district:"+id)
		}
	}
	sort.Strings(rejected)
	return rejected
}

func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
