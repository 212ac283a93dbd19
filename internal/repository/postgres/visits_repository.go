package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zhytomyr-tourism/internal/domain"
	"github.com/zhytomyr-tourism/internal/domain/repository"
	"go.uber.org/zap"
)

// Области действия строк attraction_visits
const (
	visitScopeCategory = "category"
	visitScopeDistrict = "district"
)

type visitsRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewVisitsRepository - измеренная посещаемость из таблицы attraction_visits
func NewVisitsRepository(db *DB, logger *zap.Logger) repository.VisitsRepository {
	return &visitsRepository{
		db:     db,
		logger: logger,
	}
}

type visitRow struct {
	Scope           string          `db:"scope"`
	Key             string          `db:"key"`
	VisitPercentage sql.NullFloat64 `db:"visit_percentage"`
	Popularity      sql.NullFloat64 `db:"popularity"`
}

// Get возвращает nil, если таблица пуста: все показатели будут оценочными
func (r *visitsRepository) Get(ctx context.Context) (*domain.VisitData, error) {
	query := `
		SELECT scope, key, visit_percentage, popularity
		FROM attraction_visits
		ORDER BY scope, key
	`

	var rows []visitRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select attraction visits: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	data := &domain.VisitData{
		Categories: make(map[domain.Category]domain.VisitMetric),
		Districts:  make(map[string]domain.VisitMetric),
	}

	for _, row := range rows {
		metric := domain.VisitMetric{
			VisitPercentage: nullFloat(row.VisitPercentage),
			Popularity:      nullFloat(row.Popularity),
		}

		switch row.Scope {
		case visitScopeCategory:
			data.Categories[domain.Category(row.Key)] = metric
		case visitScopeDistrict:
			data.Districts[row.Key] = metric
		default:
			r.logger.Warn("Unknown visits scope, row skipped",
				zap.String("scope", row.Scope),
				zap.String("key", row.Key))
		}
	}

	return data, nil
}
