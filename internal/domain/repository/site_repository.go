package repository

import (
	"context"

	"github.com/tourism-registry/internal/domain"
)

// SiteRepository is the durable store for tourism-site records.
type SiteRepository interface {
	// Create persists a new record.
	Create(ctx context.Context, site *domain.TouristSite) error

	// GetByID fetches one record; returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*domain.TouristSite, error)

	// List returns records newest first, optionally scoped to one district.
	List(ctx context.Context, filter domain.DistrictFilter) ([]domain.TouristSite, error)

	// Delete removes a record by id; returns false when no row matched.
	Delete(ctx context.Context, id string) (bool, error)
}
