package domain

import "github.com/paulmach/orb"

// Point - координаты в WGS-84 (десятичные градусы)
type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}

// Orb возвращает точку в порядке [lng, lat], принятом в orb и GeoJSON
func (p Point) Orb() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}
