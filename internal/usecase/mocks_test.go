package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zhytomyr-tourism/internal/domain"
	"github.com/zhytomyr-tourism/internal/geo"
)

// MockAttractionRepository is a mock of AttractionRepository
type MockAttractionRepository struct {
	mock.Mock
}

func (m *MockAttractionRepository) List(ctx context.Context) ([]domain.Attraction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attraction), args.Error(1)
}

// MockVisitsRepository is a mock of VisitsRepository
type MockVisitsRepository struct {
	mock.Mock
}

func (m *MockVisitsRepository) Get(ctx context.Context) (*domain.VisitData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VisitData), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func (m *MockCacheRepository) SetSnapshot(ctx context.Context, snapshot *domain.Snapshot, ttl time.Duration) error {
	args := m.Called(ctx, snapshot, ttl)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int64) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// testResolver - два соседних квадрата с общей границей по долготе 28.1
func testResolver(t *testing.T) *geo.Resolver {
	t.Helper()

	r, err := geo.NewResolver([]domain.District{
		{
			ID:       "west",
			Name:     "Західний",
			AreaKm2:  50,
			Boundary: orb.Ring{{28.0, 50.0}, {28.1, 50.0}, {28.1, 50.1}, {28.0, 50.1}, {28.0, 50.0}},
		},
		{
			ID:       "east",
			Name:     "Східний",
			AreaKm2:  25,
			Boundary: orb.Ring{{28.1, 50.0}, {28.2, 50.0}, {28.2, 50.1}, {28.1, 50.1}, {28.1, 50.0}},
		},
	})
	require.NoError(t, err)
	return r
}

func attraction(id, category string, coords *domain.Point) domain.Attraction {
	return domain.Attraction{
		ID:          domain.AttractionID(id),
		Name:        "object " + id,
		Category:    category,
		Coordinates: coords,
	}
}

func pt(lat, lng float64) *domain.Point {
	return &domain.Point{Lat: lat, Lng: lng}
}

func ptrFloat64(v float64) *float64 {
	return &v
}

// testAttractions - 6 объектов: 4 в районах, 1 вне районов, 1 без координат, 1 неизвестная категория
func testAttractions() []domain.Attraction {
	return []domain.Attraction{
		attraction("1", "historical", pt(50.05, 28.05)),
		attraction("2", "historical", pt(50.05, 28.15)),
		attraction("3", "parks", pt(50.02, 28.02)),
		attraction("4", "sport", pt(50.08, 28.18)),
		attraction("5", "culture", pt(50.45, 30.52)),
		attraction("6", "nature", nil),
	}
}
