package repository

import (
	"context"
	"time"

	"github.com/tourism-registry/internal/domain"
)

// CacheRepository is the read-side cache for derived dashboard data.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// GetStats returns cached dashboard stats for a filter, or (nil, nil) on
	// a miss. An unparseable cached payload is treated as a miss.
	GetStats(ctx context.Context, filter domain.DistrictFilter) (*domain.DashboardStats, error)
	SetStats(ctx context.Context, stats *domain.DashboardStats, ttl time.Duration) error

	// InvalidateDashboard drops every cached stats and marker entry. Called
	// after any mutation.
	InvalidateDashboard(ctx context.Context) error
}
