package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zhytomyr-tourism/internal/domain"
	"github.com/zhytomyr-tourism/internal/domain/repository"
	"go.uber.org/zap"
)

// SnapshotKey - ключ последнего снимка статистики
const SnapshotKey = "stats:snapshot"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetSnapshot получает снимок статистики из кеша
func (r *cacheRepository) GetSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	data, err := r.Get(ctx, SnapshotKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		r.logger.Error("Failed to unmarshal snapshot from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}

// SetSnapshot сохраняет снимок статистики в кеше
func (r *cacheRepository) SetSnapshot(ctx context.Context, snapshot *domain.Snapshot, ttl time.Duration) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		r.logger.Error("Failed to marshal snapshot", zap.Error(err))
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	return r.Set(ctx, SnapshotKey, data, ttl)
}
