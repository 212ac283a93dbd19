package repository

import (
	"context"

	"github.com/zhytomyr-tourism/internal/domain"
)

// VisitsRepository - внешний источник измеренной посещаемости (может отсутствовать)
type VisitsRepository interface {
	// Get возвращает показатели посещаемости по кластерам и районам
	Get(ctx context.Context) (*domain.VisitData, error)
}
