package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/zhytomyr-tourism/internal/domain"
)

// SnapshotInfo - версия снимка, из которого построен ответ
type SnapshotInfo struct {
	Version    uuid.UUID `json:"version"`
	ComputedAt time.Time `json:"computed_at"`
}

// CategoryStatisticsResponse - статистика по кластерам
type CategoryStatisticsResponse struct {
	Categories      []domain.CategoryStat `json:"categories"`
	ClassifiedCount int                   `json:"classified_count"`
	UnknownCount    int                   `json:"unknown_count"`
	SnapshotInfo
}

// DistrictDensityResponse - плотность объектов по районам
type DistrictDensityResponse struct {
	Districts     []domain.DistrictStat `json:"districts"`
	LocatedCount  int                   `json:"located_count"`
	ExcludedCount int                   `json:"excluded_count"`
	SnapshotInfo
}

// RefreshRequest - ручной запуск пересчета
type RefreshRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=200"`
}

// RefreshResponse - итог пересчета
type RefreshResponse struct {
	TotalObjects  int `json:"total_objects"`
	LocatedCount  int `json:"located_count"`
	ExcludedCount int `json:"excluded_count"`
	UnknownCount  int `json:"unknown_count"`
	SnapshotInfo
}
