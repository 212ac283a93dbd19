package usecase

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/zhytomyr-tourism/internal/aggregation"
	"github.com/zhytomyr-tourism/internal/domain"
	"github.com/zhytomyr-tourism/internal/domain/repository"
	"github.com/zhytomyr-tourism/internal/metrics"
	"github.com/zhytomyr-tourism/internal/pkg/errors"
	"github.com/zhytomyr-tourism/internal/pkg/validator"
	"github.com/zhytomyr-tourism/internal/usecase/dto"
	"go.uber.org/zap"
)

// Источники запуска пересчета
const (
	TriggerStartup = "startup"
	TriggerAPI     = "api"
	TriggerStream  = "stream"
	TriggerCLI     = "cli"
)

// StatsUseCase хранит текущий снимок статистики и пересчитывает его.
// Читатели всегда получают целый снимок: он заменяется одной атомарной записью.
type StatsUseCase struct {
	attractionRepo repository.AttractionRepository
	visitsRepo     repository.VisitsRepository
	cacheRepo      repository.CacheRepository
	streamRepo     repository.StreamRepository
	resolver       aggregation.DistrictResolver
	cacheTTL       time.Duration
	logger         *zap.Logger

	snapshot  atomic.Pointer[domain.Snapshot]
	refreshMu sync.Mutex
	now       func() time.Time
}

// StatsOption - необязательная зависимость StatsUseCase
type StatsOption func(*StatsUseCase)

// WithVisits подключает источник измеренной посещаемости
func WithVisits(repo repository.VisitsRepository) StatsOption {
	return func(uc *StatsUseCase) { uc.visitsRepo = repo }
}

// WithCache включает сохранение снимков в кеш для теплого старта
func WithCache(repo repository.CacheRepository, ttl time.Duration) StatsOption {
	return func(uc *StatsUseCase) {
		uc.cacheRepo = repo
		uc.cacheTTL = ttl
	}
}

// WithStream включает публикацию событий stream:statistics:refreshed
func WithStream(repo repository.StreamRepository) StatsOption {
	return func(uc *StatsUseCase) { uc.streamRepo = repo }
}

// WithClock подменяет источник времени (тесты)
func WithClock(now func() time.Time) StatsOption {
	return func(uc *StatsUseCase) { uc.now = now }
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	attractionRepo repository.AttractionRepository,
	resolver aggregation.DistrictResolver,
	logger *zap.Logger,
	opts ...StatsOption,
) *StatsUseCase {
	uc := &StatsUseCase{
		attractionRepo: attractionRepo,
		resolver:       resolver,
		logger:         logger,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Snapshot возвращает текущий снимок или nil, если он еще не построен
func (uc *StatsUseCase) Snapshot() *domain.Snapshot {
	return uc.snapshot.Load()
}

// Refresh перечитывает источник данных, пересчитывает статистику и публикует новый снимок.
// При ошибке предыдущий снимок остается в силе.
func (uc *StatsUseCase) Refresh(ctx context.Context, trigger string) (*domain.Snapshot, error) {
	uc.refreshMu.Lock()
	defer uc.refreshMu.Unlock()

	start := time.Now()
	snapshot, err := uc.build(ctx)
	took := time.Since(start)

	if err != nil {
		metrics.ObserveRefresh(trigger, metrics.RefreshFailed, took)
		uc.logger.Error("Statistics refresh failed",
			zap.String("trigger", trigger),
			zap.Duration("took", took),
			zap.Error(err))
		uc.publish(ctx, domain.StatisticsRefreshedEvent{
			ComputedAt: uc.now().UTC(),
			Trigger:    trigger,
			Error:      err.Error(),
		})
		return nil, err
	}

	uc.snapshot.Store(snapshot)
	metrics.ObserveRefresh(trigger, metrics.RefreshSuccess, took)
	metrics.ObserveSnapshot(snapshot)

	totals := snapshot.Aggregate.Totals
	uc.logger.Info("Statistics refreshed",
		zap.String("trigger", trigger),
		zap.String("version", snapshot.Version.String()),
		zap.Int("total_objects", totals.TotalObjects),
		zap.Int("located", totals.LocatedCount),
		zap.Int("excluded", totals.ExcludedCount),
		zap.Int("unknown_category", totals.UnknownCount),
		zap.Duration("took", took))

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetSnapshot(ctx, snapshot, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache snapshot", zap.Error(err))
		}
	}

	uc.publish(ctx, domain.StatisticsRefreshedEvent{
		Version:       snapshot.Version,
		ComputedAt:    snapshot.ComputedAt,
		TotalObjects:  totals.TotalObjects,
		ExcludedCount: totals.ExcludedCount,
		Trigger:       trigger,
	})

	return snapshot, nil
}

func (uc *StatsUseCase) build(ctx context.Context) (*domain.Snapshot, error) {
	attractions, err := uc.attractionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load attractions: %w", err)
	}

	visits := uc.loadVisits(ctx)

	placed := aggregation.Place(attractions, uc.resolver)
	agg := aggregation.FromPlaced(placed, uc.resolver.Districts(), visits)

	for token, count := range agg.UnknownCategories {
		uc.logger.Debug("Unknown category token",
			zap.String("category", token),
			zap.Int("count", count))
	}

	return &domain.Snapshot{
		Version:     uuid.New(),
		ComputedAt:  uc.now().UTC(),
		Aggregate:   agg,
		Attractions: placed,
	}, nil
}

// loadVisits - отсутствие или сбой источника посещаемости не ошибка: показатели будут оценочными
func (uc *StatsUseCase) loadVisits(ctx context.Context) *domain.VisitData {
	if uc.visitsRepo == nil {
		return nil
	}

	visits, err := uc.visitsRepo.Get(ctx)
	if err != nil {
		uc.logger.Warn("Visits data unavailable, using estimates", zap.Error(err))
		return nil
	}

	if rejected := aggregation.RejectedMetrics(visits); len(rejected) > 0 {
		uc.logger.Warn("Measured metrics out of range, using estimates",
			zap.Strings("metrics", rejected))
	}

	return visits
}

// WarmUp строит первый снимок. Если источник недоступен, берет последний снимок из кеша.
func (uc *StatsUseCase) WarmUp(ctx context.Context) error {
	_, err := uc.Refresh(ctx, TriggerStartup)
	if err == nil {
		return nil
	}

	if uc.cacheRepo == nil {
		return err
	}

	cached, cacheErr := uc.cacheRepo.GetSnapshot(ctx)
	if cacheErr != nil {
		return fmt.Errorf("%w (cache: %v)", err, cacheErr)
	}
	if cached == nil {
		return err
	}

	uc.snapshot.Store(cached)
	metrics.ObserveSnapshot(cached)
	uc.logger.Warn("Serving cached statistics snapshot",
		zap.String("version", cached.Version.String()),
		zap.Time("computed_at", cached.ComputedAt),
		zap.NamedError("refresh_error", err))

	return nil
}

func (uc *StatsUseCase) publish(ctx context.Context, event domain.StatisticsRefreshedEvent) {
	if uc.streamRepo == nil {
		return
	}
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamStatisticsRefreshed, event); err != nil {
		uc.logger.Warn("Failed to publish refreshed event", zap.Error(err))
	}
}

func (uc *StatsUseCase) current() (*domain.Snapshot, error) {
	s := uc.snapshot.Load()
	if s == nil {
		return nil, errors.ErrStatisticsUnavailable
	}
	return s, nil
}

// GetCategoryStatistics возвращает статистику по всем семи кластерам в объявленном порядке
func (uc *StatsUseCase) GetCategoryStatistics(ctx context.Context) (*dto.CategoryStatisticsResponse, error) {
	s, err := uc.current()
	if err != nil {
		return nil, err
	}

	return &dto.CategoryStatisticsResponse{
		Categories:      append([]domain.CategoryStat(nil), s.Aggregate.Categories...),
		ClassifiedCount: s.Aggregate.Totals.ClassifiedCount,
		UnknownCount:    s.Aggregate.Totals.UnknownCount,
		SnapshotInfo:    snapshotInfo(s),
	}, nil
}

// GetDistrictDensity возвращает плотность объектов по районам
func (uc *StatsUseCase) GetDistrictDensity(ctx context.Context) (*dto.DistrictDensityResponse, error) {
	s, err := uc.current()
	if err != nil {
		return nil, err
	}

	return &dto.DistrictDensityResponse{
		Districts:     append([]domain.DistrictStat(nil), s.Aggregate.Districts...),
		LocatedCount:  s.Aggregate.Totals.LocatedCount,
		ExcludedCount: s.Aggregate.Totals.ExcludedCount,
		SnapshotInfo:  snapshotInfo(s),
	}, nil
}

// GetAnalyticsBundle возвращает объединенную аналитику из одного снимка
func (uc *StatsUseCase) GetAnalyticsBundle(ctx context.Context) (*domain.AnalyticsBundle, error) {
	s, err := uc.current()
	if err != nil {
		return nil, err
	}

	bundle := aggregation.Bundle(s.Aggregate)
	bundle.Categories = append([]domain.CategoryStat(nil), bundle.Categories...)
	bundle.Districts = append([]domain.DistrictStat(nil), bundle.Districts...)
	bundle.UnknownCategories = maps.Clone(bundle.UnknownCategories)
	bundle.Version = s.Version
	bundle.ComputedAt = s.ComputedAt
	return &bundle, nil
}

// RefreshStatistics - ручной пересчет из API
func (uc *StatsUseCase) RefreshStatistics(ctx context.Context, req dto.RefreshRequest) (*dto.RefreshResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if req.Reason != "" {
		uc.logger.Info("Manual statistics refresh requested", zap.String("reason", req.Reason))
	}

	s, err := uc.Refresh(ctx, TriggerAPI)
	if err != nil {
		return nil, errors.ErrRefreshFailed.WithDetails(map[string]interface{}{
			"error": err.Error(),
		})
	}

	t := s.Aggregate.Totals
	return &dto.RefreshResponse{
		TotalObjects:  t.TotalObjects,
		LocatedCount:  t.LocatedCount,
		ExcludedCount: t.ExcludedCount,
		UnknownCount:  t.UnknownCount,
		SnapshotInfo:  snapshotInfo(s),
	}, nil
}

func snapshotInfo(s *domain.Snapshot) dto.SnapshotInfo {
	return dto.SnapshotInfo{
		Version:    s.Version,
		ComputedAt: s.ComputedAt,
	}
}
