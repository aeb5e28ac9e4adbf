package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/tourism-registry/internal/domain"
	"github.com/tourism-registry/internal/domain/repository"
	"github.com/tourism-registry/internal/pkg/errors"
	"github.com/tourism-registry/internal/pkg/validator"
	"github.com/tourism-registry/internal/usecase/dto"
	"go.uber.org/zap"
)

// SiteUseCase owns the lifecycle of tourism-site records: create, list,
// delete. Records are never edited in place.
type SiteUseCase struct {
	siteRepo   repository.SiteRepository
	cacheRepo  repository.CacheRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

// NewSiteUseCase creates a new SiteUseCase. streamRepo may be nil when
// event publishing is disabled.
func NewSiteUseCase(
	siteRepo repository.SiteRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *SiteUseCase {
	return &SiteUseCase{
		siteRepo:   siteRepo,
		cacheRepo:  cacheRepo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// Create validates the request, assigns an id, and persists the record.
// District falls back to the default district; capacity input that does not
// parse is coerced to 0; unknown or duplicate risks are dropped.
func (uc *SiteUseCase) Create(ctx context.Context, req dto.CreateSiteRequest) (*domain.TouristSite, error) {
	if err := validator.Validate(req); err != nil {
		uc.logger.Debug("Create site validation failed", zap.Error(err))
		// Fresh instance so details never leak onto the shared sentinel.
		appErr := errors.New(
			errors.ErrValidation.Code,
			errors.ErrValidation.Message,
			errors.ErrValidation.StatusCode,
		)
		return nil, appErr.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}

	siteType := domain.SiteType(req.Type)
	if !siteType.IsValid() {
		return nil, errors.ErrInvalidSiteType
	}

	risks := make([]domain.Risk, 0, len(req.Risks))
	for _, r := range req.Risks {
		risks = append(risks, domain.Risk(r))
	}

	site := &domain.TouristSite{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Village:   req.Village,
		District:  domain.NormalizeDistrict(req.District),
		Type:      siteType,
		Capacity:  parseCapacity(req.Capacity),
		Risks:     domain.NormalizeRisks(risks),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.siteRepo.Create(ctx, site); err != nil {
		return nil, err
	}

	uc.logger.Info("Tourist site created",
		zap.String("id", site.ID),
		zap.String("name", site.Name),
		zap.String("district", string(site.District)),
	)

	uc.invalidateDashboard(ctx)
	uc.publishEvent(ctx, repository.SiteEvent{
		Event:    repository.EventSiteCreated,
		SiteID:   site.ID,
		Name:     site.Name,
		District: site.District,
	})

	return site, nil
}

// GetByID fetches one record.
func (uc *SiteUseCase) GetByID(ctx context.Context, id string) (*domain.TouristSite, error) {
	site, err := uc.siteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, errors.ErrSiteNotFound
	}
	return site, nil
}

// List returns records newest first, optionally filtered by district. An
// empty filter means "all".
func (uc *SiteUseCase) List(ctx context.Context, filter domain.DistrictFilter) ([]domain.TouristSite, error) {
	if filter == "" {
		filter = domain.FilterAll
	}
	if !filter.IsValid() {
		return nil, errors.ErrInvalidDistrict
	}
	return uc.siteRepo.List(ctx, filter)
}

// Delete removes a record by id. The client performs the confirmation
// dialog; a call here is the confirmed action.
func (uc *SiteUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.siteRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errors.ErrSiteNotFound
	}

	uc.logger.Info("Tourist site deleted", zap.String("id", id))

	uc.invalidateDashboard(ctx)
	uc.publishEvent(ctx, repository.SiteEvent{
		Event:  repository.EventSiteDeleted,
		SiteID: id,
	})

	return nil
}

// invalidateDashboard drops derived dashboard caches after a mutation.
// Cache failures are logged, never surfaced: the store already changed.
func (uc *SiteUseCase) invalidateDashboard(ctx context.Context) {
	if err := uc.cacheRepo.InvalidateDashboard(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate dashboard cache", zap.Error(err))
	}
}

// publishEvent fires a mutation event at the audit stream, fire-and-forget.
func (uc *SiteUseCase) publishEvent(ctx context.Context, event repository.SiteEvent) {
	if uc.streamRepo == nil {
		return
	}
	if err := uc.streamRepo.PublishSiteEvent(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish site event",
			zap.String("event", event.Event),
			zap.Error(err))
	}
}

// parseCapacity coerces raw form input to a non-negative int, defaulting to
// 0 for anything unparseable or negative.
func parseCapacity(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
