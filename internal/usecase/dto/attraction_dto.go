package dto

import "github.com/zhytomyr-tourism/internal/domain"

// DistrictFilterNone - объекты, не привязанные ни к одному району
const DistrictFilterNone = "none"

// AttractionListRequest - фильтры списка объектов
type AttractionListRequest struct {
	Category string `query:"category" validate:"omitempty,cluster"`
	District string `query:"district" validate:"omitempty,max=64"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=1000"`
	Offset   int    `query:"offset" validate:"omitempty,min=0"`
}

// AttractionListResponse - страница списка объектов
type AttractionListResponse struct {
	Attractions []domain.PlacedAttraction `json:"attractions"`
	Total       int                       `json:"total"`
	SnapshotInfo
}
