package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zhytomyr-tourism/internal/domain"
)

// Статусы обновления снимка
const (
	RefreshSuccess = "success"
	RefreshFailed  = "failed"
)

var (
	RefreshTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tourism_stats_refresh_total",
		Help: "Total statistics refreshes by trigger and status",
	}, []string{"trigger", "status"})
	RefreshDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tourism_stats_refresh_duration_ms",
		Help:    "Statistics refresh duration in milliseconds",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
	})
	SnapshotObjects = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tourism_snapshot_objects",
		Help: "Objects in the current snapshot by placement",
	}, []string{"placement"})
	SnapshotTimestamp = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tourism_snapshot_computed_timestamp_seconds",
		Help: "Unix time the current snapshot was computed",
	})
	UnknownCategoryObjects = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tourism_snapshot_unknown_category_objects",
		Help: "Objects whose category did not match any cluster",
	})
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tourism_http_requests_total",
		Help: "Total HTTP requests by route and status",
	}, []string{"route", "status"})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tourism_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route"})
)

func init() {
	prometheus.MustRegister(RefreshTotal)
	prometheus.MustRegister(RefreshDurationMs)
	prometheus.MustRegister(SnapshotObjects)
	prometheus.MustRegister(SnapshotTimestamp)
	prometheus.MustRegister(UnknownCategoryObjects)
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDurationMs)
}

// ObserveRefresh фиксирует итог одного обновления
func ObserveRefresh(trigger, status string, took time.Duration) {
	RefreshTotal.WithLabelValues(trigger, status).Inc()
	RefreshDurationMs.Observe(float64(took.Microseconds()) / 1000)
}

// ObserveSnapshot выставляет gauges по опубликованному снимку
func ObserveSnapshot(s *domain.Snapshot) {
	t := s.Aggregate.Totals
	SnapshotObjects.WithLabelValues("total").Set(float64(t.TotalObjects))
	SnapshotObjects.WithLabelValues(string(domain.PlacementLocated)).Set(float64(t.LocatedCount))
	SnapshotObjects.WithLabelValues(string(domain.PlacementOutsideDistricts)).Set(float64(t.OutsideDistricts))
	SnapshotObjects.WithLabelValues(string(domain.PlacementInvalidCoordinates)).Set(float64(t.InvalidCoordinates))
	SnapshotObjects.WithLabelValues(string(domain.PlacementNoCoordinates)).Set(float64(t.MissingCoordinates))
	UnknownCategoryObjects.Set(float64(t.UnknownCount))
	SnapshotTimestamp.Set(float64(s.ComputedAt.Unix()))
}

// Handler отдает зарегистрированные метрики для /metrics
func Handler() http.Handler { return promhttp.Handler() }
