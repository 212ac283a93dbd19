package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AttractionID - идентификатор объекта. В исходных наборах данных встречается
// как строкой, так и числом, поэтому при декодировании принимаются оба варианта.
type AttractionID string

func (id *AttractionID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("attraction id is null")
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = AttractionID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("attraction id must be string or number: %w", err)
	}
	*id = AttractionID(n.String())
	return nil
}

// Attraction - туристический объект (точка интереса)
type Attraction struct {
	ID          AttractionID `json:"id"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Coordinates *Point       `json:"coordinates,omitempty"`

	// Описательные поля, агрегация их не читает
	Address      *string  `json:"address,omitempty"`
	Description  *string  `json:"description,omitempty"`
	WorkingHours *string  `json:"workingHours,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	Website      *string  `json:"website,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
}

// HasCoordinates проверяет, указаны ли координаты (без проверки их валидности)
func (a *Attraction) HasCoordinates() bool {
	return a.Coordinates != nil
}

// PlacedAttraction - объект с результатом классификации и привязки к району
type PlacedAttraction struct {
	Attraction
	Cluster    Category  `json:"cluster"`
	DistrictID string    `json:"district_id,omitempty"`
	Placement  Placement `json:"placement"`
}

// Placement - итог геопривязки объекта
type Placement string

const (
	PlacementLocated            Placement = "located"
	PlacementOutsideDistricts   Placement = "outside_districts"
	PlacementInvalidCoordinates Placement = "invalid_coordinates"
	PlacementNoCoordinates      Placement = "no_coordinates"
)
