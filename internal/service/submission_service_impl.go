package service

import (
	"context"
	"fmt"
	"time"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
)

// submissionServiceImpl is the production implementation of SubmissionService.
type submissionServiceImpl struct {
	repo repository.SubmissionRepository
}

// NewSubmissionService creates a SubmissionService backed by the given repository.
func NewSubmissionService(repo repository.SubmissionRepository) SubmissionService {
	return &submissionServiceImpl{repo: repo}
}

// Submit stores a new submission with status "unread". The store overrides
// the timestamps set here with its own on insert.
func (s *submissionServiceImpl) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	now := time.Now().UTC()
	sub.Status = model.StatusUnread
	sub.CreatedAt = now
	sub.UpdatedAt = now
	return s.repo.Create(ctx, sub)
}

// List returns submissions according to the given filter options.
func (s *submissionServiceImpl) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx, opts)
}

// transition applies a status change together with its audit event. The
// repository commits both atomically, so a failure leaves the stored status
// and the trail untouched. The caller has already confirmed the states differ.
func (s *submissionServiceImpl) transition(ctx context.Context, sub *model.ContactSubmission, to, actorID string) error {
	ev := &model.SubmissionEvent{
		SubmissionID: sub.ID,
		FromStatus:   sub.Status,
		ToStatus:     to,
		ActorID:      actorID,
	}
	if err := s.repo.UpdateStatusWithEvent(ctx, ev); err != nil {
		return fmt.Errorf("transition %s to %s: %w", sub.Status, to, err)
	}
	sub.Status = to
	return nil
}

// Open returns a submission, transitioning unread ones to read.
func (s *submissionServiceImpl) Open(ctx context.Context, id, actorID string) (*model.ContactSubmission, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.Status == model.StatusUnread {
		if err := s.transition(ctx, sub, model.StatusRead, actorID); err != nil {
			return nil, err
		}
	}
	return sub, nil
}

// UpdateStatus reassigns the moderation state. Assigning the current state
// is a no-op and leaves no audit entry.
func (s *submissionServiceImpl) UpdateStatus(ctx context.Context, id, status, actorID string) error {
	if !model.ValidStatus(status) {
		return ErrInvalidStatus
	}
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sub.Status == status {
		return nil
	}
	return s.transition(ctx, sub, status, actorID)
}

// Reply marks a submission replied and returns it.
func (s *submissionServiceImpl) Reply(ctx context.Context, id, actorID string) (*model.ContactSubmission, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.Status != model.StatusReplied {
		if err := s.transition(ctx, sub, model.StatusReplied, actorID); err != nil {
			return nil, err
		}
	}
	return sub, nil
}

// Delete removes a submission permanently.
func (s *submissionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Stats returns per-state counts.
func (s *submissionServiceImpl) Stats(ctx context.Context) (*model.SubmissionStats, error) {
	return s.repo.Stats(ctx)
}

// Events returns the audit trail of a submission.
func (s *submissionServiceImpl) Events(ctx context.Context, id string) ([]*model.SubmissionEvent, error) {
	return s.repo.ListEvents(ctx, id)
}
