package usecase

import (
	"context"

	"github.com/zhytomyr-tourism/internal/domain"
	"github.com/zhytomyr-tourism/internal/pkg/errors"
	"github.com/zhytomyr-tourism/internal/pkg/validator"
	"github.com/zhytomyr-tourism/internal/usecase/dto"
	"go.uber.org/zap"
)

const defaultAttractionLimit = 100

// SnapshotProvider - источник текущего снимка
type SnapshotProvider interface {
	Snapshot() *domain.Snapshot
}

// AttractionUseCase - выдача объектов с результатом классификации и привязки
type AttractionUseCase struct {
	snapshots SnapshotProvider
	logger    *zap.Logger
}

// NewAttractionUseCase создает новый экземпляр AttractionUseCase
func NewAttractionUseCase(snapshots SnapshotProvider, logger *zap.Logger) *AttractionUseCase {
	return &AttractionUseCase{
		snapshots: snapshots,
		logger:    logger,
	}
}

// ListAttractions фильтрует объекты текущего снимка по кластеру и району.
// district=none выбирает объекты, не привязанные ни к одному району.
func (uc *AttractionUseCase) ListAttractions(ctx context.Context, req dto.AttractionListRequest) (*dto.AttractionListResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	s := uc.snapshots.Snapshot()
	if s == nil {
		return nil, errors.ErrStatisticsUnavailable
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultAttractionLimit
	}

	matched := make([]domain.PlacedAttraction, 0)
	total := 0
	for i := range s.Attractions {
		a := &s.Attractions[i]
		if !matches(a, req) {
			continue
		}
		if total >= req.Offset && len(matched) < limit {
			matched = append(matched, *a)
		}
		total++
	}

	return &dto.AttractionListResponse{
		Attractions:  matched,
		Total:        total,
		SnapshotInfo: snapshotInfo(s),
	}, nil
}

func matches(a *domain.PlacedAttraction, req dto.AttractionListRequest) bool {
	if req.Category != "" && string(a.Cluster) != req.Category {
		return false
	}

	switch req.District {
	case "":
		return true
	case dto.DistrictFilterNone:
		return a.Placement != domain.PlacementLocated
	default:
		return a.DistrictID == req.District
	}
}
