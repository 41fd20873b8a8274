package repository

import (
	"context"
	"errors"

	"github.com/devfolio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AboutFeatureRepository persists about-section highlight cards.
type AboutFeatureRepository interface {
	List(ctx context.Context) ([]*model.AboutFeature, error)
	GetByID(ctx context.Context, id string) (*model.AboutFeature, error)
	Create(ctx context.Context, f *model.AboutFeature) error
	Update(ctx context.Context, f *model.AboutFeature) error
	Delete(ctx context.Context, id string) error
}

// PgAboutFeatureRepository is the PostgreSQL implementation of AboutFeatureRepository.
type PgAboutFeatureRepository struct {
	pool *pgxpool.Pool
}

// NewPgAboutFeatureRepository creates a PgAboutFeatureRepository backed by the given pool.
func NewPgAboutFeatureRepository(pool *pgxpool.Pool) *PgAboutFeatureRepository {
	return &PgAboutFeatureRepository{pool: pool}
}

var _ AboutFeatureRepository = (*PgAboutFeatureRepository)(nil)

// List returns all features in display order.
func (r *PgAboutFeatureRepository) List(ctx context.Context) ([]*model.AboutFeature, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, icon, sort_order, created_at, updated_at
		 FROM about_features ORDER BY sort_order, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var features []*model.AboutFeature
	for rows.Next() {
		var f model.AboutFeature
		if err := rows.Scan(&f.ID, &f.Title, &f.Description, &f.Icon, &f.SortOrder, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		features = append(features, &f)
	}
	return features, rows.Err()
}

// GetByID returns a single feature or ErrNotFound.
func (r *PgAboutFeatureRepository) GetByID(ctx context.Context, id string) (*model.AboutFeature, error) {
	var f model.AboutFeature
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, description, icon, sort_order, created_at, updated_at
		 FROM about_features WHERE id = $1`, id,
	).Scan(&f.ID, &f.Title, &f.Description, &f.Icon, &f.SortOrder, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create inserts a feature and populates its id and timestamps.
func (r *PgAboutFeatureRepository) Create(ctx context.Context, f *model.AboutFeature) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO about_features (title, description, icon, sort_order)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		f.Title, f.Description, string(f.Icon), f.SortOrder,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

// Update overwrites all editable fields of a feature.
func (r *PgAboutFeatureRepository) Update(ctx context.Context, f *model.AboutFeature) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE about_features SET title=$1, description=$2, icon=$3, sort_order=$4, updated_at=NOW() WHERE id=$5`,
		f.Title, f.Description, string(f.Icon), f.SortOrder, f.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a feature permanently.
func (r *PgAboutFeatureRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM about_features WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
