package repository

import (
	"context"

	"github.com/zhytomyr-tourism/internal/domain"
)

// DistrictRepository - справочник административных районов
type DistrictRepository interface {
	// List возвращает районы в объявленном порядке
	List(ctx context.Context) ([]domain.District, error)
}
