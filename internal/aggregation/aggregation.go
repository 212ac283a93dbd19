// Package aggregation считает статистику по кластерам и районам.
// Все функции чистые: один и тот же вход дает побитно одинаковый результат.
package aggregation

import (
	"github.com/zhytomyr-tourism/internal/cluster"
	"github.com/zhytomyr-tourism/internal/domain"
	"github.com/zhytomyr-tourism/internal/pkg/utils"
)

// DistrictResolver - определение района по точке
type DistrictResolver interface {
	ResolveDistrict(p domain.Point) (string, bool, error)
	Districts() []domain.District
}

// Place классифицирует объекты и привязывает их к районам
func Place(attractions []domain.Attraction, resolver DistrictResolver) []domain.PlacedAttraction {
	placed := make([]domain.PlacedAttraction, len(attractions))

	for i, a := range attractions {
		p := domain.PlacedAttraction{
			Attraction: a,
			Cluster:    cluster.Classify(a.Category),
		}

		switch {
		case a.Coordinates == nil:
			p.Placement = domain.PlacementNoCoordinates
		default:
			id, found, err := resolver.ResolveDistrict(*a.Coordinates)
			switch {
			case err != nil:
				p.Placement = domain.PlacementInvalidCoordinates
			case !found:
				p.Placement = domain.PlacementOutsideDistricts
			default:
				p.Placement = domain.PlacementLocated
				p.DistrictID = id
			}
		}

		placed[i] = p
	}

	return placed
}

// Aggregate строит статистику по набору объектов.
// visits может быть nil - тогда все отображаемые показатели помечаются как оценочные.
func Aggregate(attractions []domain.Attraction, resolver DistrictResolver, visits *domain.VisitData) domain.Aggregate {
	return FromPlaced(Place(attractions, resolver), resolver.Districts(), visits)
}

// FromPlaced строит статистику по уже размещенным объектам
func FromPlaced(placed []domain.PlacedAttraction, districts []domain.District, visits *domain.VisitData) domain.Aggregate {
	var totals domain.Totals
	totals.TotalObjects = len(placed)

	categoryCounts := make([]int, len(domain.Categories))
	districtCounts := make(map[string]int, len(districts))
	unknown := make(map[string]int)

	for _, p := range placed {
		if i, ok := cluster.Index(p.Cluster); ok {
			categoryCounts[i]++
			totals.ClassifiedCount++
		} else {
			unknown[p.Category]++
			totals.UnknownCount++
		}

		switch p.Placement {
		case domain.PlacementNoCoordinates:
			totals.MissingCoordinates++
		case domain.PlacementInvalidCoordinates:
			totals.WithCoordinates++
			totals.InvalidCoordinates++
		case domain.PlacementOutsideDistricts:
			totals.WithCoordinates++
			totals.OutsideDistricts++
		case domain.PlacementLocated:
			totals.WithCoordinates++
			totals.LocatedCount++
			districtCounts[p.DistrictID]++
		}
	}
	totals.ExcludedCount = totals.InvalidCoordinates + totals.OutsideDistricts

	return domain.Aggregate{
		Categories:        categoryStats(categoryCounts, totals.ClassifiedCount, visits),
		Districts:         districtStats(districts, districtCounts, visits),
		Totals:            totals,
		UnknownCategories: unknown,
	}
}

func categoryStats(counts []int, classified int, visits *domain.VisitData) []domain.CategoryStat {
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	defs := cluster.Definitions()
	stats := make([]domain.CategoryStat, len(defs))

	for i, def := range defs {
		count := counts[i]
		stat := domain.CategoryStat{
			Category:   def.ID,
			Name:       def.Name,
			Color:      def.Color,
			Icon:       def.Icon,
			Count:      count,
			Percentage: percentage(count, classified),
			Source:     domain.SourceEstimated,
		}

		stat.VisitPercentage = stat.Percentage
		if maxCount > 0 {
			stat.PopularityScore = utils.Round1(float64(count) * 10 / float64(maxCount))
		}

		if m, ok := measuredCategory(visits, def.ID); ok {
			stat.VisitPercentage = *m.VisitPercentage
			stat.PopularityScore = *m.Popularity
			stat.Source = domain.SourceMeasured
		}

		stats[i] = stat
	}

	return stats
}

func districtStats(districts []domain.District, counts map[string]int, visits *domain.VisitData) []domain.DistrictStat {
	maxCount := 0
	for _, d := range districts {
		if counts[d.ID] > maxCount {
			maxCount = counts[d.ID]
		}
	}

	stats := make([]domain.DistrictStat, len(districts))
	for i, d := range districts {
		count := counts[d.ID]
		stat := domain.DistrictStat{
			DistrictID: d.ID,
			Name:       d.Name,
			AreaKm2:    d.AreaKm2,
			Count:      count,
			Density:    float64(count) / d.AreaKm2,
			Source:     domain.SourceEstimated,
		}

		if maxCount > 0 {
			stat.PopularityIndex = float64(count) / float64(maxCount)
		}

		if m, ok := measuredDistrict(visits, d.ID); ok {
			stat.PopularityIndex = *m.Popularity
			stat.Source = domain.SourceMeasured
		}

		stats[i] = stat
	}

	return stats
}

// Bundle собирает объединенный ответ аналитики из агрегата
func Bundle(agg domain.Aggregate) domain.AnalyticsBundle {
	totalClusters := len(domain.Categories)

	return domain.AnalyticsBundle{
		Categories: agg.Categories,
		Districts:  agg.Districts,
		Totals:     agg.Totals,
		Quality: domain.QualityMetrics{
			TotalObjects:      agg.Totals.TotalObjects,
			TotalClusters:     totalClusters,
			AveragePerCluster: utils.Round1(float64(agg.Totals.ClassifiedCount) / float64(totalClusters)),
			ExcludedCount:     agg.Totals.ExcludedCount,
		},
		UnknownCategories: agg.UnknownCategories,
	}
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return utils.Round1(float64(count) * 100 / float64(total))
}
