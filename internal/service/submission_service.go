package service

import (
	"context"
	"errors"

	"github.com/devfolio/backend/internal/model"
)

// ErrInvalidStatus is returned when a status reassignment names an unknown
// moderation state.
var ErrInvalidStatus = errors.New("invalid status")

// SubmissionService implements the contact-submission moderation workflow:
// visitor intake, triage queries, status transitions and the audit trail.
type SubmissionService interface {
	// Submit stores a new visitor submission. The status is forced to
	// "unread"; id and timestamps are populated by the store.
	Submit(ctx context.Context, sub *model.ContactSubmission) error

	// List returns submissions according to the given filter options,
	// newest first.
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error)

	// Open returns a submission for the detail view. Opening an unread
	// submission transitions it to "read" (exactly one update call); the
	// returned record reflects the new state only after the store has
	// confirmed it. Opening a read or replied submission issues no update.
	Open(ctx context.Context, id, actorID string) (*model.ContactSubmission, error)

	// UpdateStatus reassigns the moderation state. Any of the three states
	// may be assigned at any time; each change is recorded as an event.
	UpdateStatus(ctx context.Context, id, status, actorID string) error

	// Reply marks a submission "replied" and returns it. The actual email
	// is a mail-client handoff owned by the caller.
	Reply(ctx context.Context, id, actorID string) (*model.ContactSubmission, error)

	// Delete removes a submission permanently.
	Delete(ctx context.Context, id string) error

	// Stats returns per-state counts.
	Stats(ctx context.Context) (*model.SubmissionStats, error)

	// Events returns the transition audit trail of a submission, oldest first.
	Events(ctx context.Context, id string) ([]*model.SubmissionEvent, error)
}
