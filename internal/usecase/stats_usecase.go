package usecase

import (
	"context"
	"time"

	"github.com/tourism-registry/internal/domain"
	"github.com/tourism-registry/internal/domain/repository"
	"github.com/tourism-registry/internal/pkg/errors"
	"go.uber.org/zap"
)

// StatsUseCase computes dashboard statistics. Aggregation itself is the
// pure domain.Aggregate over the full record list; this layer adds the
// teacher-pattern cache-aside on top.
type StatsUseCase struct {
	siteRepo  repository.SiteRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewStatsUseCase creates a new StatsUseCase.
func NewStatsUseCase(
	siteRepo repository.SiteRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		siteRepo:  siteRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// GetDashboardStats returns aggregates for a district filter, using the
// cache when possible. An empty filter means "all".
func (uc *StatsUseCase) GetDashboardStats(ctx context.Context, filter domain.DistrictFilter) (*domain.DashboardStats, error) {
	if filter == "" {
		filter = domain.FilterAll
	}
	if !filter.IsValid() {
		return nil, errors.ErrInvalidDistrict
	}

	// 1. Check the cache
	cached, err := uc.cacheRepo.GetStats(ctx, filter)
	if err == nil && cached != nil {
		uc.logger.Debug("Dashboard stats fetched from cache",
			zap.String("filter", string(filter)))
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	}

	// 2. Recompute in full from the record list
	sites, err := uc.siteRepo.List(ctx, domain.FilterAll)
	if err != nil {
		return nil, err
	}
	stats := domain.Aggregate(sites, filter)

	// 3. Cache the result
	if err := uc.cacheRepo.SetStats(ctx, &stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache dashboard stats", zap.Error(err))
		// The stats are already computed, so no error to the caller
	}

	return &stats, nil
}
