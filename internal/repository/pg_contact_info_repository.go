package repository

import (
	"context"
	"errors"

	"github.com/devfolio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactInfoRepository persists contact/social display rows.
type ContactInfoRepository interface {
	// List returns all rows; when activeOnly is set, only active ones.
	List(ctx context.Context, activeOnly bool) ([]*model.ContactInfo, error)
	GetByID(ctx context.Context, id string) (*model.ContactInfo, error)
	Create(ctx context.Context, ci *model.ContactInfo) error
	Update(ctx context.Context, ci *model.ContactInfo) error
	Delete(ctx context.Context, id string) error
}

// PgContactInfoRepository is the PostgreSQL implementation of ContactInfoRepository.
type PgContactInfoRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactInfoRepository creates a PgContactInfoRepository backed by the given pool.
func NewPgContactInfoRepository(pool *pgxpool.Pool) *PgContactInfoRepository {
	return &PgContactInfoRepository{pool: pool}
}

var _ ContactInfoRepository = (*PgContactInfoRepository)(nil)

const contactInfoColumns = `id, label, value, icon, info_type, display_order, is_active, created_at, updated_at`

func scanContactInfo(row pgx.Row) (*model.ContactInfo, error) {
	var ci model.ContactInfo
	err := row.Scan(&ci.ID, &ci.Label, &ci.Value, &ci.Icon, &ci.Type,
		&ci.DisplayOrder, &ci.IsActive, &ci.CreatedAt, &ci.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &ci, nil
}

// List returns contact-info rows ordered for display.
func (r *PgContactInfoRepository) List(ctx context.Context, activeOnly bool) ([]*model.ContactInfo, error) {
	query := `SELECT ` + contactInfoColumns + ` FROM contact_info`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY display_order, created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []*model.ContactInfo
	for rows.Next() {
		ci, err := scanContactInfo(rows)
		if err != nil {
			return nil, err
		}
		infos = append(infos, ci)
	}
	return infos, rows.Err()
}

// GetByID returns a single row or ErrNotFound.
func (r *PgContactInfoRepository) GetByID(ctx context.Context, id string) (*model.ContactInfo, error) {
	ci, err := scanContactInfo(r.pool.QueryRow(ctx,
		`SELECT `+contactInfoColumns+` FROM contact_info WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return ci, err
}

// Create inserts a row and populates its id and timestamps.
func (r *PgContactInfoRepository) Create(ctx context.Context, ci *model.ContactInfo) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_info (label, value, icon, info_type, display_order, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		ci.Label, ci.Value, string(ci.Icon), ci.Type, ci.DisplayOrder, ci.IsActive,
	).Scan(&ci.ID, &ci.CreatedAt, &ci.UpdatedAt)
}

// Update overwrites all editable fields of a row.
func (r *PgContactInfoRepository) Update(ctx context.Context, ci *model.ContactInfo) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_info SET label=$1, value=$2, icon=$3, info_type=$4, display_order=$5,
		 is_active=$6, updated_at=NOW() WHERE id=$7`,
		ci.Label, ci.Value, string(ci.Icon), ci.Type, ci.DisplayOrder, ci.IsActive, ci.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a row permanently.
func (r *PgContactInfoRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_info WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
