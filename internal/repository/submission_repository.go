package repository

import (
	"context"

	"github.com/devfolio/backend/internal/model"
)

// SubmissionRepository persists contact submissions and their moderation
// audit trail. The store owns ids and timestamps; callers never supply them.
type SubmissionRepository interface {
	Create(ctx context.Context, sub *model.ContactSubmission) error
	GetByID(ctx context.Context, id string) (*model.ContactSubmission, error)
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error)

	// UpdateStatusWithEvent applies the status change described by ev and
	// appends it to the audit trail in a single transaction: either both
	// land or neither does.
	UpdateStatusWithEvent(ctx context.Context, ev *model.SubmissionEvent) error

	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*model.SubmissionStats, error)
	ListEvents(ctx context.Context, submissionID string) ([]*model.SubmissionEvent, error)
}
