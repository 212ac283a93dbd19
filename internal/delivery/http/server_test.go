package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zhytomyr-tourism/internal/config"
	server "github.com/zhytomyr-tourism/internal/delivery/http"
	"github.com/zhytomyr-tourism/internal/delivery/http/handler"
	"github.com/zhytomyr-tourism/internal/domain"
	"github.com/zhytomyr-tourism/internal/geo"
	"github.com/zhytomyr-tourism/internal/usecase"
)

// staticAttractions - источник объектов в памяти
type staticAttractions struct {
	items []domain.Attraction
	err   error
}

func (s *staticAttractions) List(ctx context.Context) ([]domain.Attraction, error) {
	return s.items, s.err
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func point(lat, lng float64) *domain.Point {
	return &domain.Point{Lat: lat, Lng: lng}
}

func newTestServer(t *testing.T, source *staticAttractions, warm bool) (*server.Server, *usecase.StatsUseCase) {
	t.Helper()
	logger := zap.NewNop()

	resolver, err := geo.NewResolver([]domain.District{
		{
			ID:       "zhytomyr",
			Name:     "Житомирський район",
			AreaKm2:  8569,
			Boundary: orb.Ring{{28.1, 50.0}, {29.65, 50.0}, {29.65, 50.6}, {28.1, 50.6}, {28.1, 50.0}},
		},
		{
			ID:       "berdychiv",
			Name:     "Бердичівський район",
			AreaKm2:  3546,
			Boundary: orb.Ring{{27.9, 49.55}, {29.3, 49.55}, {29.3, 50.0}, {27.9, 50.0}, {27.9, 49.55}},
		},
	})
	require.NoError(t, err)

	statsUC := usecase.NewStatsUseCase(source, resolver, logger)
	if warm {
		_, err := statsUC.Refresh(context.Background(), usecase.TriggerStartup)
		require.NoError(t, err)
	}

	cfg := &config.Config{Server: config.ServerConfig{AllowOrigins: "*"}}
	srv := server.NewServer(cfg, logger, server.Handlers{
		Stats:      handler.NewStatsHandler(statsUC, logger),
		District:   handler.NewDistrictHandler(usecase.NewDistrictUseCase(resolver, logger), logger),
		Attraction: handler.NewAttractionHandler(usecase.NewAttractionUseCase(statsUC, logger), logger),
		Health: handler.NewHealthHandler(statsUC, map[string]handler.HealthCheck{
			"redis": func(ctx context.Context) error { return nil },
		}),
	})

	return srv, statsUC
}

func defaultSource() *staticAttractions {
	return &staticAttractions{items: []domain.Attraction{
		{ID: "1", Name: "Музей космонавтики", Category: "culture", Coordinates: point(50.2547, 28.6587)},
		{ID: "2", Name: "Монастир босих кармелітів", Category: "historical", Coordinates: point(49.8993, 28.5855)},
		{ID: "3", Name: "Велотрек", Category: "sport", Coordinates: point(50.26, 28.65)},
		{ID: "4", Name: "Київ", Category: "culture", Coordinates: point(50.45, 30.52)},
		{ID: "5", Name: "Без координат", Category: "parks"},
	}}
}

func do(t *testing.T, srv *server.Server, method, target string, body io.Reader) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func TestStatisticsEndpoints(t *testing.T) {
	srv, statsUC := newTestServer(t, defaultSource(), true)
	version := statsUC.Snapshot().Version.String()

	t.Run("categories", func(t *testing.T) {
		status, env := do(t, srv, http.MethodGet, "/api/v1/statistics/categories", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, version, env.Meta["version"])

		var data struct {
			Categories []domain.CategoryStat `json:"categories"`
			Classified int                   `json:"classified_count"`
			Unknown    int                   `json:"unknown_count"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Len(t, data.Categories, 7)
		assert.Equal(t, domain.CategoryHistorical, data.Categories[0].Category)
		assert.Equal(t, 4, data.Classified)
		assert.Equal(t, 1, data.Unknown)
		assert.Equal(t, 50.0, data.Categories[3].Percentage, "culture 2 of 4")
	})

	t.Run("districts", func(t *testing.T) {
		status, env := do(t, srv, http.MethodGet, "/api/v1/statistics/districts", nil)
		require.Equal(t, http.StatusOK, status)

		var data struct {
			Districts []domain.DistrictStat `json:"districts"`
			Excluded  int                   `json:"excluded_count"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Len(t, data.Districts, 2)
		assert.Equal(t, "zhytomyr", data.Districts[0].DistrictID)
		assert.Equal(t, 2, data.Districts[0].Count)
		assert.InDelta(t, 2.0/8569, data.Districts[0].Density, 1e-12)
		assert.Equal(t, 1, data.Districts[1].Count)
		assert.Equal(t, 1, data.Excluded)
	})

	t.Run("analytics", func(t *testing.T) {
		status, env := do(t, srv, http.MethodGet, "/api/v1/statistics/analytics", nil)
		require.Equal(t, http.StatusOK, status)

		var bundle domain.AnalyticsBundle
		require.NoError(t, json.Unmarshal(env.Data, &bundle))
		assert.Equal(t, 5, bundle.Quality.TotalObjects)
		assert.Equal(t, 7, bundle.Quality.TotalClusters)
		assert.Equal(t, 0.6, bundle.Quality.AveragePerCluster)
		assert.Equal(t, 1, bundle.Quality.ExcludedCount)
		assert.Equal(t, version, bundle.Version.String())
	})

	t.Run("clusters", func(t *testing.T) {
		status, env := do(t, srv, http.MethodGet, "/api/v1/clusters", nil)
		require.Equal(t, http.StatusOK, status)

		var defs []domain.ClusterDefinition
		require.NoError(t, json.Unmarshal(env.Data, &defs))
		assert.Len(t, defs, 7)
	})
}

func TestStatisticsUnavailableBeforeFirstSnapshot(t *testing.T) {
	srv, _ := newTestServer(t, defaultSource(), false)

	for _, path := range []string{
		"/api/v1/statistics/categories",
		"/api/v1/statistics/districts",
		"/api/v1/statistics/analytics",
		"/api/v1/attractions",
	} {
		status, env := do(t, srv, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusServiceUnavailable, status, path)
		require.NotNil(t, env.Error, path)
		assert.Equal(t, "STATISTICS_UNAVAILABLE", env.Error.Code)
	}

	status, _ := do(t, srv, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestResolveEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, defaultSource(), true)

	t.Run("located", func(t *testing.T) {
		status, env := do(t, srv, http.MethodGet, "/api/v1/districts/resolve?lat=50.2547&lng=28.6587", nil)
		require.Equal(t, http.StatusOK, status)

		var data struct {
			Status   string `json:"status"`
			District struct {
				ID string `json:"id"`
			} `json:"district"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "located", data.Status)
		assert.Equal(t, "zhytomyr", data.District.ID)
	})

	t.Run("none with nearest hint", func(t *testing.T) {
		status, env := do(t, srv, http.MethodGet, "/api/v1/districts/resolve?lat=50.45&lng=30.52&nearest=true", nil)
		require.Equal(t, http.StatusOK, status)

		var data struct {
			Status   string          `json:"status"`
			District json.RawMessage `json:"district"`
			Nearest  struct {
				ID string `json:"id"`
			} `json:"nearest"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "none", data.Status)
		assert.Empty(t, data.District)
		assert.Equal(t, "zhytomyr", data.Nearest.ID)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, q := range []string{"lat=999&lng=28", "lat=abc&lng=28", "lng=28"} {
			status, env := do(t, srv, http.MethodGet, "/api/v1/districts/resolve?"+q, nil)
			assert.Equal(t, http.StatusBadRequest, status, q)
			require.NotNil(t, env.Error, q)
		}
	})
}

func TestDistrictEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, defaultSource(), true)

	status, env := do(t, srv, http.MethodGet, "/api/v1/districts", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), env.Meta["total"])

	status, _ = do(t, srv, http.MethodGet, "/api/v1/districts/berdychiv", nil)
	assert.Equal(t, http.StatusOK, status)

	status, env = do(t, srv, http.MethodGet, "/api/v1/districts/kyiv", nil)
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DISTRICT_NOT_FOUND", env.Error.Code)
}

func TestAttractionsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, defaultSource(), true)

	status, env := do(t, srv, http.MethodGet, "/api/v1/attractions?category=culture&district=zhytomyr", nil)
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Attractions []domain.PlacedAttraction `json:"attractions"`
		Total       int                       `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Attractions, 1)
	assert.Equal(t, domain.AttractionID("1"), data.Attractions[0].ID)

	status, env = do(t, srv, http.MethodGet, "/api/v1/attractions?category=Culture", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
	assert.Equal(t, "cluster", env.Error.Details["category"])
}

func TestRefreshEndpoint(t *testing.T) {
	source := defaultSource()
	srv, statsUC := newTestServer(t, source, true)
	before := statsUC.Snapshot().Version

	source.items = append(source.items, domain.Attraction{
		ID: "6", Name: "Гідропарк", Category: "parks", Coordinates: point(50.2424, 28.681),
	})

	status, env := do(t, srv, http.MethodPost, "/api/v1/admin/statistics/refresh", strings.NewReader(`{"reason":"upload"}`))
	require.Equal(t, http.StatusOK, status)
	assert.NotEqual(t, before, statsUC.Snapshot().Version)

	var data struct {
		TotalObjects int `json:"total_objects"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 6, data.TotalObjects)

	source.err = errors.New("source unavailable")
	status, env = do(t, srv, http.MethodPost, "/api/v1/admin/statistics/refresh", nil)
	assert.Equal(t, http.StatusBadGateway, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "REFRESH_FAILED", env.Error.Code)
}

func TestHealthAndUnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t, defaultSource(), true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.NotNil(t, body["snapshot"])

	status, env := do(t, srv, http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, defaultSource(), true)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "tourism_stats_refresh_total")
}
