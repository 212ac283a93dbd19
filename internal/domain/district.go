package domain

import "github.com/paulmach/orb"

// District - административный район области
type District struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	AreaKm2 float64 `json:"area_km2"`

	// Boundary - один замкнутый контур из вершин [lng, lat], без дыр
	Boundary orb.Ring `json:"boundary"`
}

// Center возвращает центр ограничивающего прямоугольника района
func (d *District) Center() Point {
	c := d.Boundary.Bound().Center()
	return Point{Lat: c.Lat(), Lng: c.Lon()}
}

// BBox - охватывающий прямоугольник контура (масштабирование карты)
func (d *District) BBox() BoundingBox {
	b := d.Boundary.Bound()
	return BoundingBox{
		MinLat: b.Min.Lat(),
		MinLng: b.Min.Lon(),
		MaxLat: b.Max.Lat(),
		MaxLng: b.Max.Lon(),
	}
}
