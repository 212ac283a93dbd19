package usecase

import (
	"context"
	"math"

	"github.com/zhytomyr-tourism/internal/domain"
	"github.com/zhytomyr-tourism/internal/geo"
	"github.com/zhytomyr-tourism/internal/pkg/errors"
	"github.com/zhytomyr-tourism/internal/pkg/utils"
	"github.com/zhytomyr-tourism/internal/pkg/validator"
	"github.com/zhytomyr-tourism/internal/usecase/dto"
	"go.uber.org/zap"
)

// DistrictDirectory - справочник районов с определением района по точке
type DistrictDirectory interface {
	ResolveDistrict(p domain.Point) (string, bool, error)
	Districts() []domain.District
	District(id string) (domain.District, bool)
}

// DistrictUseCase обрабатывает запросы к справочнику районов
type DistrictUseCase struct {
	directory DistrictDirectory
	logger    *zap.Logger
}

// NewDistrictUseCase создает новый экземпляр DistrictUseCase
func NewDistrictUseCase(directory DistrictDirectory, logger *zap.Logger) *DistrictUseCase {
	return &DistrictUseCase{
		directory: directory,
		logger:    logger,
	}
}

// ListDistricts возвращает районы в объявленном порядке
func (uc *DistrictUseCase) ListDistricts(ctx context.Context, withBoundary bool) []dto.DistrictResponse {
	districts := uc.directory.Districts()
	result := make([]dto.DistrictResponse, 0, len(districts))
	for i := range districts {
		result = append(result, toDistrictResponse(&districts[i], withBoundary))
	}
	return result
}

// GetDistrict возвращает район по идентификатору
func (uc *DistrictUseCase) GetDistrict(ctx context.Context, id string) (*dto.DistrictResponse, error) {
	d, ok := uc.directory.District(id)
	if !ok {
		return nil, errors.ErrDistrictNotFound
	}
	resp := toDistrictResponse(&d, true)
	return &resp, nil
}

// ResolveDistrict определяет район по точке.
// Точка вне всех районов дает status=none, район по умолчанию не подставляется.
func (uc *DistrictUseCase) ResolveDistrict(ctx context.Context, req dto.ResolveDistrictRequest) (*dto.ResolveDistrictResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	p := domain.Point{Lat: *req.Lat, Lng: *req.Lng}
	id, found, err := uc.directory.ResolveDistrict(p)
	if err != nil {
		uc.logger.Debug("Resolve rejected", zap.Float64("lat", p.Lat), zap.Float64("lng", p.Lng), zap.Error(err))
		return nil, errors.ErrInvalidCoordinates
	}

	if found {
		d, _ := uc.directory.District(id)
		resp := toDistrictResponse(&d, false)
		return &dto.ResolveDistrictResponse{
			Status:   dto.ResolveStatusLocated,
			District: &resp,
		}, nil
	}

	resp := &dto.ResolveDistrictResponse{Status: dto.ResolveStatusNone}
	if req.WithNearest {
		resp.Nearest = uc.nearest(p)
	}
	return resp, nil
}

// nearest ищет район с ближайшим центром
func (uc *DistrictUseCase) nearest(p domain.Point) *dto.NearestDistrict {
	var best *dto.NearestDistrict
	bestDist := math.Inf(1)

	for _, d := range uc.directory.Districts() {
		c := d.Center()
		dist := utils.HaversineDistance(p.Lat, p.Lng, c.Lat, c.Lng)
		if dist < bestDist {
			bestDist = dist
			best = &dto.NearestDistrict{
				ID:         d.ID,
				Name:       d.Name,
				DistanceKm: utils.Round1(dist),
			}
		}
	}

	return best
}

func toDistrictResponse(d *domain.District, withBoundary bool) dto.DistrictResponse {
	resp := dto.DistrictResponse{
		ID:      d.ID,
		Name:    d.Name,
		AreaKm2: d.AreaKm2,
		Center:  d.Center(),
		BBox:    d.BBox(),
	}
	if withBoundary {
		resp.Boundary = d.Boundary.Clone()
	}
	return resp
}

var _ DistrictDirectory = (*geo.Resolver)(nil)
