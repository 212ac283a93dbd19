package file

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/zhytomyr-tourism/internal/domain"
	"github.com/zhytomyr-tourism/internal/domain/repository"
	"go.uber.org/zap"
)

type districtRepository struct {
	path   string
	logger *zap.Logger
}

// NewDistrictRepository - районы из GeoJSON FeatureCollection.
// Свойства объекта: id, name и необязательная area_km2.
func NewDistrictRepository(path string, logger *zap.Logger) repository.DistrictRepository {
	return &districtRepository{
		path:   path,
		logger: logger,
	}
}

func (r *districtRepository) List(ctx context.Context) ([]domain.District, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read districts file: %w", err)
	}

	districts, err := DecodeDistricts(data)
	if err != nil {
		return nil, fmt.Errorf("decode districts %s: %w", r.path, err)
	}

	r.logger.Debug("Districts loaded from file",
		zap.String("path", r.path),
		zap.Int("count", len(districts)))

	return districts, nil
}

// DecodeDistricts разбирает GeoJSON. Допускается только Polygon с одним контуром.
func DecodeDistricts(data []byte) ([]domain.District, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}

	districts := make([]domain.District, 0, len(fc.Features))
	for i, f := range fc.Features {
		id := stringProperty(f.Properties, "id")
		if id == "" {
			return nil, fmt.Errorf("feature #%d: missing id property", i)
		}

		poly, ok := f.Geometry.(orb.Polygon)
		if !ok {
			return nil, fmt.Errorf("district %s: geometry must be Polygon, got %s", id, geometryType(f.Geometry))
		}
		if len(poly) != 1 {
			return nil, fmt.Errorf("district %s: polygon must have exactly one ring, got %d", id, len(poly))
		}

		area, err := floatProperty(f.Properties, "area_km2")
		if err != nil {
			return nil, fmt.Errorf("district %s: %w", id, err)
		}

		name := stringProperty(f.Properties, "name")
		if name == "" {
			name = id
		}

		districts = append(districts, domain.District{
			ID:       id,
			Name:     name,
			AreaKm2:  area,
			Boundary: poly[0],
		})
	}

	return districts, nil
}

func geometryType(g orb.Geometry) string {
	if g == nil {
		return "null"
	}
	return g.GeoJSONType()
}

// stringProperty читает строковое или числовое свойство
func stringProperty(p geojson.Properties, key string) string {
	switch v := p[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// floatProperty возвращает 0, если свойства нет
func floatProperty(p geojson.Properties, key string) (float64, error) {
	switch v := p[key].(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("property %s must be a number, got %T", key, v)
	}
}
