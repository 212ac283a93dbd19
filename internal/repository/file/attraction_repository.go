package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/zhytomyr-tourism/internal/domain"
	"github.com/zhytomyr-tourism/internal/domain/repository"
	"go.uber.org/zap"
)

type attractionRepository struct {
	path   string
	logger *zap.Logger
}

// NewAttractionRepository - объекты из статического JSON-набора.
// Файл перечитывается при каждом List, поэтому замена файла подхватывается при обновлении.
func NewAttractionRepository(path string, logger *zap.Logger) repository.AttractionRepository {
	return &attractionRepository{
		path:   path,
		logger: logger,
	}
}

// attractionsDocument допускает как голый массив, так и объект {"attractions": [...]}
type attractionsDocument struct {
	Attractions []domain.Attraction `json:"attractions"`
}

func (r *attractionRepository) List(ctx context.Context) ([]domain.Attraction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read attractions file: %w", err)
	}

	attractions, err := DecodeAttractions(data)
	if err != nil {
		return nil, fmt.Errorf("decode attractions %s: %w", r.path, err)
	}

	r.logger.Debug("Attractions loaded from file",
		zap.String("path", r.path),
		zap.Int("count", len(attractions)))

	return attractions, nil
}

// DecodeAttractions разбирает JSON-набор объектов.
// Объекты без id или названия отклоняются целиком: это ошибка источника данных.
func DecodeAttractions(data []byte) ([]domain.Attraction, error) {
	var attractions []domain.Attraction

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var doc attractionsDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		attractions = doc.Attractions
	} else if err := json.Unmarshal(data, &attractions); err != nil {
		return nil, err
	}

	seen := make(map[domain.AttractionID]struct{}, len(attractions))
	for i, a := range attractions {
		if a.ID == "" {
			return nil, fmt.Errorf("attraction #%d: empty id", i)
		}
		if strings.TrimSpace(a.Name) == "" {
			return nil, fmt.Errorf("attraction %s: empty name", a.ID)
		}
		if _, ok := seen[a.ID]; ok {
			return nil, fmt.Errorf("attraction %s: duplicate id", a.ID)
		}
		seen[a.ID] = struct{}{}
	}

	if attractions == nil {
		attractions = []domain.Attraction{}
	}
	return attractions, nil
}
