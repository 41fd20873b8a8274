package repository

import (
	"context"
	"errors"

	"github.com/devfolio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PersonalInfoRepository persists the single-row owner profile.
type PersonalInfoRepository interface {
	Get(ctx context.Context) (*model.PersonalInfo, error)
	Upsert(ctx context.Context, info *model.PersonalInfo) error
}

// PgPersonalInfoRepository is the PostgreSQL implementation of PersonalInfoRepository.
type PgPersonalInfoRepository struct {
	pool *pgxpool.Pool
}

// NewPgPersonalInfoRepository creates a PgPersonalInfoRepository backed by the given pool.
func NewPgPersonalInfoRepository(pool *pgxpool.Pool) *PgPersonalInfoRepository {
	return &PgPersonalInfoRepository{pool: pool}
}

var _ PersonalInfoRepository = (*PgPersonalInfoRepository)(nil)

const personalInfoColumns = `id, name, title, COALESCE(bio, ''), email, COALESCE(phone, ''),
	COALESCE(location, ''), COALESCE(github, ''), COALESCE(linkedin, ''), COALESCE(twitter, ''),
	COALESCE(resume_url, ''), created_at, updated_at`

func scanPersonalInfo(row pgx.Row) (*model.PersonalInfo, error) {
	var p model.PersonalInfo
	err := row.Scan(&p.ID, &p.Name, &p.Title, &p.Bio, &p.Email, &p.Phone,
		&p.Location, &p.Github, &p.Linkedin, &p.Twitter, &p.ResumeURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Get returns the profile row, or ErrNotFound when none has been written yet.
func (r *PgPersonalInfoRepository) Get(ctx context.Context) (*model.PersonalInfo, error) {
	p, err := scanPersonalInfo(r.pool.QueryRow(ctx,
		`SELECT `+personalInfoColumns+` FROM personal_info ORDER BY created_at LIMIT 1`))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// Upsert updates the existing profile row or inserts the first one.
// The table never grows past a single row.
func (r *PgPersonalInfoRepository) Upsert(ctx context.Context, info *model.PersonalInfo) error {
	existing, err := r.Get(ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	if existing == nil {
		return r.pool.QueryRow(ctx,
			`INSERT INTO personal_info (name, title, bio, email, phone, location, github, linkedin, twitter, resume_url)
			 VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''))
			 RETURNING id, created_at, updated_at`,
			info.Name, info.Title, info.Bio, info.Email, info.Phone, info.Location,
			info.Github, info.Linkedin, info.Twitter, info.ResumeURL,
		).Scan(&info.ID, &info.CreatedAt, &info.UpdatedAt)
	}

	info.ID = existing.ID
	return r.pool.QueryRow(ctx,
		`UPDATE personal_info SET name=$1, title=$2, bio=NULLIF($3, ''), email=$4, phone=NULLIF($5, ''),
		 location=NULLIF($6, ''), github=NULLIF($7, ''), linkedin=NULLIF($8, ''), twitter=NULLIF($9, ''),
		 resume_url=NULLIF($10, ''), updated_at=NOW()
		 WHERE id=$11
		 RETURNING created_at, updated_at`,
		info.Name, info.Title, info.Bio, info.Email, info.Phone, info.Location,
		info.Github, info.Linkedin, info.Twitter, info.ResumeURL, info.ID,
	).Scan(&info.CreatedAt, &info.UpdatedAt)
}
