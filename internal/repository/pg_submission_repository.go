package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgSubmissionRepository is the PostgreSQL implementation of SubmissionRepository.
type PgSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubmissionRepository creates a PgSubmissionRepository backed by the given pool.
func NewPgSubmissionRepository(pool *pgxpool.Pool) *PgSubmissionRepository {
	return &PgSubmissionRepository{pool: pool}
}

var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

const submissionColumns = `id, name, email, subject, message, status, COALESCE(user_agent, ''), created_at, updated_at`

// likeEscaper neutralizes LIKE/ILIKE metacharacters so search terms match
// literally. A visitor-supplied "100%" must not turn into a wildcard.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func scanSubmission(row pgx.Row) (*model.ContactSubmission, error) {
	var s model.ContactSubmission
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.Status, &s.UserAgent, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new contact_submissions row and populates sub.ID and
// timestamps from the RETURNING clause.
func (r *PgSubmissionRepository) Create(ctx context.Context, sub *model.ContactSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, subject, message, status, user_agent)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		 RETURNING id, created_at, updated_at`,
		sub.Name, sub.Email, sub.Subject, sub.Message, sub.Status, sub.UserAgent,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
}

// GetByID returns a single submission or ErrNotFound.
func (r *PgSubmissionRepository) GetByID(ctx context.Context, id string) (*model.ContactSubmission, error) {
	sub, err := scanSubmission(r.pool.QueryRow(ctx,
		`SELECT `+submissionColumns+` FROM contact_submissions WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return sub, err
}

// List returns submissions newest first, filtered by status and by a
// case-insensitive search term matched against name, email, subject and
// message. Status "" or "all" returns every state.
func (r *PgSubmissionRepository) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
	var conditions []string
	var args []any

	status := strings.TrimSpace(opts.Status)
	if status != "" && status != "all" {
		args = append(args, status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if term := strings.TrimSpace(opts.Search); term != "" {
		args = append(args, "%"+escapeLike(term)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR email ILIKE $%d OR subject ILIKE $%d OR message ILIKE $%d)", n, n, n, n))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, opts.Limit, opts.Offset)
	query := fmt.Sprintf(
		`SELECT %s FROM contact_submissions%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		submissionColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// UpdateStatusWithEvent sets the moderation state and records the transition
// in submission_events atomically. Returns ErrNotFound when the row does not
// exist; on any failure the status is left unchanged and no event is written.
func (r *PgSubmissionRepository) UpdateStatusWithEvent(ctx context.Context, ev *model.SubmissionEvent) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE contact_submissions SET status = $1, updated_at = NOW() WHERE id = $2`,
		ev.ToStatus, ev.SubmissionID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO submission_events (submission_id, from_status, to_status, actor_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		ev.SubmissionID, ev.FromStatus, ev.ToStatus, ev.ActorID,
	).Scan(&ev.ID, &ev.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes a submission permanently. Events cascade via FK.
func (r *PgSubmissionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_submissions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats returns per-state counts aggregated server side.
func (r *PgSubmissionRepository) Stats(ctx context.Context) (*model.SubmissionStats, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM contact_submissions GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats model.SubmissionStats
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		switch status {
		case model.StatusUnread:
			stats.Unread = count
		case model.StatusRead:
			stats.Read = count
		case model.StatusReplied:
			stats.Replied = count
		}
		stats.Total += count
	}
	return &stats, rows.Err()
}

// ListEvents returns the audit trail of one submission, oldest first.
func (r *PgSubmissionRepository) ListEvents(ctx context.Context, submissionID string) ([]*model.SubmissionEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, submission_id, from_status, to_status, actor_id, created_at
		 FROM submission_events WHERE submission_id = $1 ORDER BY created_at`,
		submissionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*model.SubmissionEvent
	for rows.Next() {
		var ev model.SubmissionEvent
		if err := rows.Scan(&ev.ID, &ev.SubmissionID, &ev.FromStatus, &ev.ToStatus, &ev.ActorID, &ev.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, &ev)
	}
	return events, rows.Err()
}
