package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tourism-registry/internal/domain"
	"github.com/tourism-registry/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	statsKeyPrefix   = "dashboard:stats:"
	markersKeyPrefix = "dashboard:markers:"
)

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
	if err == redis.Nil {
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
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetStats returns cached dashboard stats for a filter. A payload that no
// longer unmarshals is logged and treated as a miss, never surfaced.
func (r *cacheRepository) GetStats(ctx context.Context, filter domain.DistrictFilter) (*domain.DashboardStats, error) {
	data, err := r.Get(ctx, statsKeyPrefix+string(filter))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Warn("Malformed cached stats, treating as miss",
			zap.String("filter", string(filter)),
			zap.Error(err))
		return nil, nil
	}

	return &stats, nil
}

func (r *cacheRepository) SetStats(ctx context.Context, stats *domain.DashboardStats, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		r.logger.Error("Failed to marshal stats", zap.Error(err))
		return fmt.Errorf("marshal stats: %w", err)
	}

	return r.Set(ctx, statsKeyPrefix+string(stats.Filter), data, ttl)
}

// InvalidateDashboard drops every cached stats and marker entry.
func (r *cacheRepository) InvalidateDashboard(ctx context.Context) error {
	for _, prefix := range []string{statsKeyPrefix, markersKeyPrefix} {
		iter := r.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
		for iter.Next(ctx) {
			if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
				r.logger.Error("Failed to invalidate cache key",
					zap.String("key", iter.Val()),
					zap.Error(err))
				return fmt.Errorf("cache invalidate error: %w", err)
			}
		}
		if err := iter.Err(); err != nil {
			r.logger.Error("Cache scan failed", zap.String("prefix", prefix), zap.Error(err))
			return fmt.Errorf("cache scan error: %w", err)
		}
	}

	r.logger.Debug("Dashboard cache invalidated")
	return nil
}
