package repository

import (
	"context"
	"errors"

	"github.com/devfolio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TestimonialRepository persists client testimonials.
type TestimonialRepository interface {
	List(ctx context.Context) ([]*model.Testimonial, error)
	GetByID(ctx context.Context, id string) (*model.Testimonial, error)
	Create(ctx context.Context, t *model.Testimonial) error
	Update(ctx context.Context, t *model.Testimonial) error
	Delete(ctx context.Context, id string) error
}

// PgTestimonialRepository is the PostgreSQL implementation of TestimonialRepository.
type PgTestimonialRepository struct {
	pool *pgxpool.Pool
}

// NewPgTestimonialRepository creates a PgTestimonialRepository backed by the given pool.
func NewPgTestimonialRepository(pool *pgxpool.Pool) *PgTestimonialRepository {
	return &PgTestimonialRepository{pool: pool}
}

var _ TestimonialRepository = (*PgTestimonialRepository)(nil)

const testimonialColumns = `id, name, COALESCE(role, ''), COALESCE(company, ''), COALESCE(avatar, ''),
	content, rating, COALESCE(project, ''), created_at, updated_at`

func scanTestimonial(row pgx.Row) (*model.Testimonial, error) {
	var t model.Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Role, &t.Company, &t.Avatar,
		&t.Content, &t.Rating, &t.Project, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all testimonials, newest first.
func (r *PgTestimonialRepository) List(ctx context.Context) ([]*model.Testimonial, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []*model.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

// GetByID returns a single testimonial or ErrNotFound.
func (r *PgTestimonialRepository) GetByID(ctx context.Context, id string) (*model.Testimonial, error) {
	t, err := scanTestimonial(r.pool.QueryRow(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return t, err
}

// Create inserts a testimonial and populates its id and timestamps.
func (r *PgTestimonialRepository) Create(ctx context.Context, t *model.Testimonial) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO testimonials (name, role, company, avatar, content, rating, project)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, $6, NULLIF($7, ''))
		 RETURNING id, created_at, updated_at`,
		t.Name, t.Role, t.Company, t.Avatar, t.Content, t.Rating, t.Project,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// Update overwrites all editable fields of a testimonial.
func (r *PgTestimonialRepository) Update(ctx context.Context, t *model.Testimonial) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE testimonials SET name=$1, role=NULLIF($2, ''), company=NULLIF($3, ''), avatar=NULLIF($4, ''),
		 content=$5, rating=$6, project=NULLIF($7, ''), updated_at=NOW() WHERE id=$8`,
		t.Name, t.Role, t.Company, t.Avatar, t.Content, t.Rating, t.Project, t.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a testimonial permanently.
func (r *PgTestimonialRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
