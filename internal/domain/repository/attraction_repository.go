package repository

import (
	"context"

	"github.com/zhytomyr-tourism/internal/domain"
)

// AttractionRepository - источник набора туристических объектов
type AttractionRepository interface {
	// List возвращает весь набор объектов в порядке хранения
	List(ctx context.Context) ([]domain.Attraction, error)
}
