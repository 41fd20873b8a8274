package service

import (
	"context"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
)

// ContactInfoService manages the contact/social display rows.
type ContactInfoService interface {
	// ListPublic returns only active rows, in display order.
	ListPublic(ctx context.Context) ([]*model.ContactInfo, error)
	// ListAll returns every row, including inactive ones, for the dashboard.
	ListAll(ctx context.Context) ([]*model.ContactInfo, error)
	Create(ctx context.Context, ci *model.ContactInfo) error
	Update(ctx context.Context, ci *model.ContactInfo) error
	Delete(ctx context.Context, id string) error
}

type contactInfoServiceImpl struct {
	repo repository.ContactInfoRepository
}

// NewContactInfoService creates a ContactInfoService backed by the given repository.
func NewContactInfoService(repo repository.ContactInfoRepository) ContactInfoService {
	return &contactInfoServiceImpl{repo: repo}
}

func (s *contactInfoServiceImpl) ListPublic(ctx context.Context) ([]*model.ContactInfo, error) {
	return s.repo.List(ctx, true)
}

func (s *contactInfoServiceImpl) ListAll(ctx context.Context) ([]*model.ContactInfo, error) {
	return s.repo.List(ctx, false)
}

func (s *contactInfoServiceImpl) Create(ctx context.Context, ci *model.ContactInfo) error {
	return s.repo.Create(ctx, ci)
}

func (s *contactInfoServiceImpl) Update(ctx context.Context, ci *model.ContactInfo) error {
	return s.repo.Update(ctx, ci)
}

func (s *contactInfoServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
