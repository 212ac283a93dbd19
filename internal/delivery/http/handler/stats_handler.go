package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/zhytomyr-tourism/internal/cluster"
	"github.com/zhytomyr-tourism/internal/pkg/errors"
	"github.com/zhytomyr-tourism/internal/pkg/utils"
	"github.com/zhytomyr-tourism/internal/usecase"
	"github.com/zhytomyr-tourism/internal/usecase/dto"
	"go.uber.org/zap"
)

// StatsHandler обрабатывает запросы для статистики
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetCategoryStatistics godoc
// @Summary Category statistics
// @Description Количество и доля объектов по каждому из семи кластеров в объявленном порядке
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CategoryStatisticsResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/statistics/categories [get]
func (h *StatsHandler) GetCategoryStatistics(c *fiber.Ctx) error {
	resp, err := h.statsUC.GetCategoryStatistics(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, snapshotMeta(resp.SnapshotInfo, len(resp.Categories)))
}

// GetDistrictDensity godoc
// @Summary District density
// @Description Количество объектов, плотность на км² и индекс популярности по районам
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.DistrictDensityResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/statistics/districts [get]
func (h *StatsHandler) GetDistrictDensity(c *fiber.Ctx) error {
	resp, err := h.statsUC.GetDistrictDensity(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, snapshotMeta(resp.SnapshotInfo, len(resp.Districts)))
}

// GetAnalyticsBundle godoc
// @Summary Analytics bundle
// @Description Кластеры, районы, сводные счетчики и показатели качества из одного снимка
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.AnalyticsBundle}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/statistics/analytics [get]
func (h *StatsHandler) GetAnalyticsBundle(c *fiber.Ctx) error {
	bundle, err := h.statsUC.GetAnalyticsBundle(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, bundle, snapshotMeta(dto.SnapshotInfo{
		Version:    bundle.Version,
		ComputedAt: bundle.ComputedAt,
	}, bundle.Totals.TotalObjects))
}

// GetClusters godoc
// @Summary Cluster definitions
// @Description Справочник кластеров: название, цвет и иконка
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ClusterDefinition}
// @Router /api/v1/clusters [get]
func (h *StatsHandler) GetClusters(c *fiber.Ctx) error {
	defs := cluster.Definitions()
	return utils.SendSuccess(c, defs, &utils.Meta{Total: len(defs)})
}

// RefreshStatistics godoc
// @Summary Refresh statistics
// @Description Перечитывает источник данных и публикует новый снимок статистики
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest false "Причина пересчета"
// @Success 200 {object} utils.SuccessResponse{data=dto.RefreshResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/admin/statistics/refresh [post]
func (h *StatsHandler) RefreshStatistics(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
	}

	start := time.Now()
	resp, err := h.statsUC.RefreshStatistics(c.UserContext(), req)
	if err != nil {
		h.logger.Error("Manual refresh failed", zap.Error(err))
		return utils.SendError(c, err)
	}

	meta := snapshotMeta(resp.SnapshotInfo, resp.TotalObjects)
	meta.TimeMSec = float64(time.Since(start).Microseconds()) / 1000
	return utils.SendSuccess(c, resp, meta)
}

func snapshotMeta(info dto.SnapshotInfo, total int) *utils.Meta {
	return &utils.Meta{
		Total:      total,
		Version:    info.Version.String(),
		ComputedAt: info.ComputedAt.Format(time.RFC3339),
	}
}
