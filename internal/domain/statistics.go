package domain

import (
	"time"

	"github.com/google/uuid"
)

// MetricSource показывает происхождение отображаемых показателей
type MetricSource string

const (
	// SourceMeasured - значение получено из внешнего источника посещаемости
	SourceMeasured MetricSource = "measured"
	// SourceEstimated - значение вычислено из количества объектов
	SourceEstimated MetricSource = "estimated"
)

// CategoryStat - статистика по кластеру
type CategoryStat struct {
	Category        Category     `json:"category"`
	Name            string       `json:"name"`
	Color           string       `json:"color"`
	Icon            string       `json:"icon"`
	Count           int          `json:"count"`
	Percentage      float64      `json:"percentage"`
	VisitPercentage float64      `json:"visit_percentage"`
	PopularityScore float64      `json:"popularity_score"`
	Source          MetricSource `json:"source"`
}

// DistrictStat - статистика по району
type DistrictStat struct {
	DistrictID      string       `json:"district_id"`
	Name            string       `json:"name"`
	AreaKm2         float64      `json:"area_km2"`
	Count           int          `json:"count"`
	Density         float64      `json:"density"`
	PopularityIndex float64      `json:"popularity_index"`
	Source          MetricSource `json:"source"`
}

// Totals - сводные и диагностические счетчики агрегации
type Totals struct {
	TotalObjects    int `json:"total_objects"`
	ClassifiedCount int `json:"classified_count"`
	UnknownCount    int `json:"unknown_count"`

	// WithCoordinates = LocatedCount + ExcludedCount
	WithCoordinates    int `json:"with_coordinates"`
	LocatedCount       int `json:"located_count"`
	ExcludedCount      int `json:"excluded_count"`
	InvalidCoordinates int `json:"invalid_coordinates"`
	OutsideDistricts   int `json:"outside_districts"`
	MissingCoordinates int `json:"missing_coordinates"`
}

// Aggregate - результат одного прогона агрегации.
// Не содержит времени вычисления: одинаковый вход дает одинаковый результат.
type Aggregate struct {
	Categories        []CategoryStat `json:"categories"`
	Districts         []DistrictStat `json:"districts"`
	Totals            Totals         `json:"totals"`
	UnknownCategories map[string]int `json:"unknown_categories"`
}

// QualityMetrics - сводные показатели по кластерам
type QualityMetrics struct {
	TotalObjects      int     `json:"total_objects"`
	TotalClusters     int     `json:"total_clusters"`
	AveragePerCluster float64 `json:"average_per_cluster"`
	ExcludedCount     int     `json:"excluded_count"`
}

// AnalyticsBundle - объединенный ответ аналитики
type AnalyticsBundle struct {
	Categories        []CategoryStat `json:"categories"`
	Districts         []DistrictStat `json:"districts"`
	Totals            Totals         `json:"totals"`
	Quality           QualityMetrics `json:"quality"`
	UnknownCategories map[string]int `json:"unknown_categories"`
	Version           uuid.UUID      `json:"version"`
	ComputedAt        time.Time      `json:"computed_at"`
}

// VisitMetric - измеренные показатели посещаемости.
// nil-поле означает, что источник значение не предоставил.
type VisitMetric struct {
	VisitPercentage *float64 `json:"visit_percentage,omitempty"`
	Popularity      *float64 `json:"popularity,omitempty"`
}

// VisitData - данные внешнего источника посещаемости
type VisitData struct {
	Categories map[Category]VisitMetric `json:"categories,omitempty"`
	Districts  map[string]VisitMetric   `json:"districts,omitempty"`
}

// Snapshot - согласованный снимок статистики, заменяется целиком при обновлении
type Snapshot struct {
	Version     uuid.UUID          `json:"version"`
	ComputedAt  time.Time          `json:"computed_at"`
	Aggregate   Aggregate          `json:"aggregate"`
	Attractions []PlacedAttraction `json:"attractions"`
}
