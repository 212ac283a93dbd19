package repository

import (
	"context"
	"time"

	"github.com/zhytomyr-tourism/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetSnapshot получает снимок статистики из кеша (nil при промахе)
	GetSnapshot(ctx context.Context) (*domain.Snapshot, error)

	// SetSnapshot сохраняет снимок статистики в кеше
	SetSnapshot(ctx context.Context, snapshot *domain.Snapshot, ttl time.Duration) error
}
