package repository

import (
	"context"
	"errors"

	"github.com/devfolio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SkillRepository persists skill entries.
type SkillRepository interface {
	List(ctx context.Context) ([]*model.Skill, error)
	GetByID(ctx context.Context, id string) (*model.Skill, error)
	Create(ctx context.Context, s *model.Skill) error
	Update(ctx context.Context, s *model.Skill) error
	Delete(ctx context.Context, id string) error
}

// PgSkillRepository is the PostgreSQL implementation of SkillRepository.
type PgSkillRepository struct {
	pool *pgxpool.Pool
}

// NewPgSkillRepository creates a PgSkillRepository backed by the given pool.
func NewPgSkillRepository(pool *pgxpool.Pool) *PgSkillRepository {
	return &PgSkillRepository{pool: pool}
}

var _ SkillRepository = (*PgSkillRepository)(nil)

// List returns all skills ordered by category, then name.
func (r *PgSkillRepository) List(ctx context.Context) ([]*model.Skill, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, category, level, COALESCE(icon, ''), created_at, updated_at
		 FROM skills ORDER BY category, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []*model.Skill
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Level, &s.Icon, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, &s)
	}
	return skills, rows.Err()
}

// GetByID returns a single skill or ErrNotFound.
func (r *PgSkillRepository) GetByID(ctx context.Context, id string) (*model.Skill, error) {
	var s model.Skill
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, category, level, COALESCE(icon, ''), created_at, updated_at
		 FROM skills WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Category, &s.Level, &s.Icon, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a skill and populates its id and timestamps.
func (r *PgSkillRepository) Create(ctx context.Context, s *model.Skill) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO skills (name, category, level, icon)
		 VALUES ($1, $2, $3, NULLIF($4, ''))
		 RETURNING id, created_at, updated_at`,
		s.Name, s.Category, s.Level, string(s.Icon),
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update overwrites all editable fields of a skill.
func (r *PgSkillRepository) Update(ctx context.Context, s *model.Skill) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE skills SET name=$1, category=$2, level=$3, icon=NULLIF($4, ''), updated_at=NOW() WHERE id=$5`,
		s.Name, s.Category, s.Level, string(s.Icon), s.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a skill permanently.
func (r *PgSkillRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
