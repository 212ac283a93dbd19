package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zhytomyr-tourism/internal/domain"
	"github.com/zhytomyr-tourism/internal/domain/repository"
)

type attractionRepository struct {
	db *DB
}

// NewAttractionRepository - объекты из таблицы attractions
func NewAttractionRepository(db *DB) repository.AttractionRepository {
	return &attractionRepository{db: db}
}

// attractionRow - строка таблицы attractions, координаты могут отсутствовать
type attractionRow struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	Category     string          `db:"category"`
	Lat          sql.NullFloat64 `db:"lat"`
	Lng          sql.NullFloat64 `db:"lng"`
	Address      sql.NullString  `db:"address"`
	Description  sql.NullString  `db:"description"`
	WorkingHours sql.NullString  `db:"working_hours"`
	Phone        sql.NullString  `db:"phone"`
	Website      sql.NullString  `db:"website"`
	Rating       sql.NullFloat64 `db:"rating"`
}

func (r *attractionRepository) List(ctx context.Context) ([]domain.Attraction, error) {
	query := `
		SELECT
			id::text AS id,
			name,
			COALESCE(category, '') AS category,
			lat,
			lng,
			address,
			description,
			working_hours,
			phone,
			website,
			rating
		FROM attractions
		ORDER BY position, id
	`

	var rows []attractionRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select attractions: %w", err)
	}

	attractions := make([]domain.Attraction, 0, len(rows))
	for _, row := range rows {
		attractions = append(attractions, row.toDomain())
	}

	return attractions, nil
}

func (row *attractionRow) toDomain() domain.Attraction {
	a := domain.Attraction{
		ID:           domain.AttractionID(row.ID),
		Name:         row.Name,
		Category:     row.Category,
		Address:      nullString(row.Address),
		Description:  nullString(row.Description),
		WorkingHours: nullString(row.WorkingHours),
		Phone:        nullString(row.Phone),
		Website:      nullString(row.Website),
		Rating:       nullFloat(row.Rating),
	}

	// Одна координата без другой считается отсутствием координат
	if row.Lat.Valid && row.Lng.Valid {
		a.Coordinates = &domain.Point{Lat: row.Lat.Float64, Lng: row.Lng.Float64}
	}

	return a
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
