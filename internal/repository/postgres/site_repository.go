package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/tourism-registry/internal/domain"
	"github.com/tourism-registry/internal/domain/repository"
	"github.com/tourism-registry/internal/pkg/errors"
	"go.uber.org/zap"
)

const siteSchema = `
CREATE TABLE IF NOT EXISTS tourist_sites (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	village    TEXT NOT NULL,
	district   TEXT NOT NULL,
	type       TEXT NOT NULL,
	capacity   INTEGER NOT NULL DEFAULT 0 CHECK (capacity >= 0),
	risks      TEXT[] NOT NULL DEFAULT '{}',
	latitude   TEXT NOT NULL DEFAULT '',
	longitude  TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_tourist_sites_district ON tourist_sites (district);
CREATE INDEX IF NOT EXISTS idx_tourist_sites_created_at ON tourist_sites (created_at DESC);
`

type siteRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSiteRepository(db *DB) repository.SiteRepository {
	return &siteRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// EnsureSchema creates the sites table and indexes when missing.
func EnsureSchema(ctx context.Context, db *DB) error {
	if _, err := db.ExecContext(ctx, siteSchema); err != nil {
		db.logger.Error("Failed to ensure schema", zap.Error(err))
		return err
	}
	return nil
}

func (r *siteRepository) Create(ctx context.Context, site *domain.TouristSite) error {
	query := `
		INSERT INTO tourist_sites
			(id, name, village, district, type, capacity, risks, latitude, longitude, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	risks := make([]string, len(site.Risks))
	for i, risk := range site.Risks {
		risks[i] = string(risk)
	}

	_, err := r.db.ExecContext(ctx, query,
		site.ID, site.Name, site.Village,
		string(site.District), string(site.Type),
		site.Capacity, pq.Array(risks),
		site.Latitude, site.Longitude, site.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert tourist site",
			zap.String("id", site.ID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *siteRepository) GetByID(ctx context.Context, id string) (*domain.TouristSite, error) {
	query := `
		SELECT id, name, village, district, type, capacity, risks,
		       latitude, longitude, created_at
		FROM tourist_sites
		WHERE id = $1
	`

	site, err := scanSite(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get tourist site", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return site, nil
}

func (r *siteRepository) List(ctx context.Context, filter domain.DistrictFilter) ([]domain.TouristSite, error) {
	// Newest first: new records go to the front of the list.
	query := `
		SELECT id, name, village, district, type, capacity, risks,
		       latitude, longitude, created_at
		FROM tourist_sites
	`
	args := []interface{}{}

	if filter != domain.FilterAll {
		query += ` WHERE district = $1`
		args = append(args, string(filter))
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list tourist sites", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	sites := make([]domain.TouristSite, 0)
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			r.logger.Error("Failed to scan tourist site", zap.Error(err))
			continue
		}
		sites = append(sites, *site)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Row iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return sites, nil
}

func (r *siteRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tourist_sites WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete tourist site", zap.String("id", id), zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read rows affected", zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSite(row rowScanner) (*domain.TouristSite, error) {
	var site domain.TouristSite
	var district, siteType string
	var risks pq.StringArray

	err := row.Scan(
		&site.ID, &site.Name, &site.Village,
		&district, &siteType,
		&site.Capacity, &risks,
		&site.Latitude, &site.Longitude, &site.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	site.District = domain.District(district)
	site.Type = domain.SiteType(siteType)
	site.Risks = make([]domain.Risk, 0, len(risks))
	for _, r := range risks {
		site.Risks = append(site.Risks, domain.Risk(r))
	}

	return &site, nil
}
