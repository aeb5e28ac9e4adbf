package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tourism-registry/internal/domain"
	"github.com/tourism-registry/internal/domain/repository"
	"github.com/tourism-registry/internal/mapview"
	"github.com/tourism-registry/internal/pkg/errors"
	"go.uber.org/zap"
)

// markersCacheKeyPrefix must match the prefix the cache repository
// invalidates on mutation.
const markersCacheKeyPrefix = "dashboard:markers:"

// MapUseCase owns the shared dashboard map surface. The surface is mounted
// once with the configured tile layer and synced against the visible record
// list on every markers request.
type MapUseCase struct {
	siteRepo  repository.SiteRepository
	cacheRepo repository.CacheRepository
	surface   *mapview.Surface
	layer     mapview.TileLayer
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewMapUseCase creates the use case and mounts the surface.
func NewMapUseCase(
	siteRepo repository.SiteRepository,
	cacheRepo repository.CacheRepository,
	layer mapview.TileLayer,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *MapUseCase {
	surface := mapview.NewSurface(logger)
	surface.Mount(layer)

	return &MapUseCase{
		siteRepo:  siteRepo,
		cacheRepo: cacheRepo,
		surface:   surface,
		layer:     layer,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// TileLayer returns the configured base layer for the map client.
func (uc *MapUseCase) TileLayer() mapview.TileLayer {
	return uc.layer
}

// GetMarkers syncs the surface against the filtered record list and returns
// its state: base layer, markers, viewport. An empty filter means "all".
func (uc *MapUseCase) GetMarkers(ctx context.Context, filter domain.DistrictFilter) (*mapview.State, error) {
	if filter == "" {
		filter = domain.FilterAll
	}
	if !filter.IsValid() {
		return nil, errors.ErrInvalidDistrict
	}

	// 1. Check the cache
	key := markersCacheKeyPrefix + string(filter)
	if data, err := uc.cacheRepo.Get(ctx, key); err == nil && data != nil {
		var state mapview.State
		if err := json.Unmarshal(data, &state); err != nil {
			uc.logger.Warn("Malformed cached marker state, treating as miss",
				zap.String("filter", string(filter)),
				zap.Error(err))
		} else {
			uc.logger.Debug("Marker state fetched from cache",
				zap.String("filter", string(filter)))
			return &state, nil
		}
	} else if err != nil {
		uc.logger.Warn("Failed to get markers from cache", zap.Error(err))
	}

	// 2. Full resync from the record list
	sites, err := uc.siteRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	// Single critical section: a concurrent request with another filter
	// must not commit its own sync between ours and the snapshot.
	state := uc.surface.SyncAndSnapshot(sites)

	// 3. Cache the result
	if data, err := json.Marshal(&state); err == nil {
		if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache marker state", zap.Error(err))
		}
	}

	return &state, nil
}

// Teardown releases the surface on shutdown.
func (uc *MapUseCase) Teardown() {
	uc.surface.Teardown()
}
