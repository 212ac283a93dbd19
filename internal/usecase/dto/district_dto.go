package dto

import (
	"github.com/paulmach/orb"
	"github.com/zhytomyr-tourism/internal/domain"
)

// Статусы определения района
const (
	ResolveStatusLocated = "located"
	ResolveStatusNone    = "none"
)

// ResolveDistrictRequest - запрос на определение района по точке
type ResolveDistrictRequest struct {
	Lat *float64 `query:"lat" validate:"required,min=-90,max=90"`
	Lng *float64 `query:"lng" validate:"required,min=-180,max=180"`

	// WithNearest - вернуть ближайший район, если точка вне всех районов
	WithNearest bool `query:"nearest"`
}

// DistrictResponse - справочная информация о районе
type DistrictResponse struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	AreaKm2  float64            `json:"area_km2"`
	Center   domain.Point       `json:"center"`
	BBox     domain.BoundingBox `json:"bbox"`
	Boundary orb.Ring           `json:"boundary,omitempty"`
}

// ResolveDistrictResponse - результат определения района.
// Nearest заполняется только при status=none и является подсказкой, а не привязкой.
type ResolveDistrictResponse struct {
	Status   string            `json:"status"`
	District *DistrictResponse `json:"district,omitempty"`
	Nearest  *NearestDistrict  `json:"nearest,omitempty"`
}

// NearestDistrict - ближайший по центру район
type NearestDistrict struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distance_km"`
}
