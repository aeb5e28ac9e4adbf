package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/tourism-registry/internal/domain"
	"github.com/tourism-registry/internal/domain/repository"
	"github.com/tourism-registry/internal/pkg/errors"
	"github.com/tourism-registry/internal/usecase"
	"github.com/tourism-registry/internal/usecase/dto"
)

func TestSiteUseCase_Create(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("creates a record with id, default district and coerced capacity", func(t *testing.T) {
		mockSites := &MockSiteRepository{}
		mockCache := &MockCacheRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewSiteUseCase(mockSites, mockCache, mockStream, logger)

		var stored *domain.TouristSite
		mockSites.On("Create", ctx, mock.AnythingOfType("*domain.TouristSite")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*domain.TouristSite)
			}).Return(nil)
		mockCache.On("InvalidateDashboard", ctx).Return(nil)
		mockStream.On("PublishSiteEvent", ctx, mock.AnythingOfType("repository.SiteEvent")).Return(nil)

		site, err := uc.Create(ctx, dto.CreateSiteRequest{
			Name:     "Bledug Kuwu",
			Village:  "Kuwu",
			District: "NoSuchDistrict",
			Type:     "nature",
			Capacity: "not-a-number",
			Risks:    []string{"flood", "flood", "bogus"},
		})

		assert.NoError(t, err)
		assert.NotNil(t, site)
		assert.NotEmpty(t, site.ID)
		assert.Equal(t, domain.DefaultDistrict, site.District)
		assert.Equal(t, 0, site.Capacity)
		assert.Equal(t, []domain.Risk{domain.RiskFlood}, site.Risks)
		assert.Same(t, stored, site)

		mockSites.AssertExpectations(t)
		mockCache.AssertExpectations(t)
		mockStream.AssertExpectations(t)
	})

	t.Run("rejects missing required fields without touching the store", func(t *testing.T) {
		mockSites := &MockSiteRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSiteUseCase(mockSites, mockCache, nil, logger)

		_, err := uc.Create(ctx, dto.CreateSiteRequest{
			Name: "",
			Type: "nature",
		})

		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Equal(t, errors.ErrValidation.Code, appErr.Code)
		mockSites.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown site type", func(t *testing.T) {
		mockSites := &MockSiteRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSiteUseCase(mockSites, mockCache, nil, logger)

		_, err := uc.Create(ctx, dto.CreateSiteRequest{
			Name:    "Sendang Coyo",
			Village: "Mlowokarangtalun",
			Type:    "culinary",
		})

		assert.Equal(t, errors.ErrInvalidSiteType, err)
	})

	t.Run("cache and stream failures do not fail the create", func(t *testing.T) {
		mockSites := &MockSiteRepository{}
		mockCache := &MockCacheRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewSiteUseCase(mockSites, mockCache, mockStream, logger)

		mockSites.On("Create", ctx, mock.Anything).Return(nil)
		mockCache.On("InvalidateDashboard", ctx).Return(errors.ErrCacheError)
		mockStream.On("PublishSiteEvent", ctx, mock.Anything).Return(assert.AnError)

		site, err := uc.Create(ctx, dto.CreateSiteRequest{
			Name:     "Api Abadi Mrapen",
			Village:  "Manggarmas",
			District: "Godong",
			Type:     "nature",
			Capacity: "150",
		})

		assert.NoError(t, err)
		assert.Equal(t, 150, site.Capacity)
		assert.Equal(t, domain.DistrictGodong, site.District)
	})
}

func TestSiteUseCase_Delete(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("deletes and invalidates dashboard caches", func(t *testing.T) {
		mockSites := &MockSiteRepository{}
		mockCache := &MockCacheRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewSiteUseCase(mockSites, mockCache, mockStream, logger)

		mockSites.On("Delete", ctx, "site-1").Return(true, nil)
		mockCache.On("InvalidateDashboard", ctx).Return(nil)
		mockStream.On("PublishSiteEvent", ctx, mock.MatchedBy(func(e repository.SiteEvent) bool {
			return e.Event == repository.EventSiteDeleted && e.SiteID == "site-1"
		})).Return(nil)

		err := uc.Delete(ctx, "site-1")

		assert.NoError(t, err)
		mockSites.AssertExpectations(t)
		mockCache.AssertExpectations(t)
		mockStream.AssertExpectations(t)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		mockSites := &MockSiteRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSiteUseCase(mockSites, mockCache, nil, logger)

		mockSites.On("Delete", ctx, "missing").Return(false, nil)

		err := uc.Delete(ctx, "missing")

		assert.Equal(t, errors.ErrSiteNotFound, err)
		mockCache.AssertNotCalled(t, "InvalidateDashboard", mock.Anything)
	})
}

func TestSiteUseCase_List(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("empty filter defaults to all", func(t *testing.T) {
		mockSites := &MockSiteRepository{}
		uc := usecase.NewSiteUseCase(mockSites, &MockCacheRepository{}, nil, logger)

		mockSites.On("List", ctx, domain.FilterAll).Return([]domain.TouristSite{}, nil)

		sites, err := uc.List(ctx, "")

		assert.NoError(t, err)
		assert.Empty(t, sites)
		mockSites.AssertExpectations(t)
	})

	t.Run("unknown district filter is rejected", func(t *testing.T) {
		mockSites := &MockSiteRepository{}
		uc := usecase.NewSiteUseCase(mockSites, &MockCacheRepository{}, nil, logger)

		_, err := uc.List(ctx, "Atlantis")

		assert.Equal(t, errors.ErrInvalidDistrict, err)
		mockSites.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}
