package service

import (
	"context"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
)

// PersonalInfoService manages the single-row owner profile.
type PersonalInfoService interface {
	Get(ctx context.Context) (*model.PersonalInfo, error)
	Upsert(ctx context.Context, info *model.PersonalInfo) error
}

type personalInfoServiceImpl struct {
	repo repository.PersonalInfoRepository
}

// NewPersonalInfoService creates a PersonalInfoService backed by the given repository.
func NewPersonalInfoService(repo repository.PersonalInfoRepository) PersonalInfoService {
	return &personalInfoServiceImpl{repo: repo}
}

func (s *personalInfoServiceImpl) Get(ctx context.Context) (*model.PersonalInfo, error) {
	return s.repo.Get(ctx)
}

func (s *personalInfoServiceImpl) Upsert(ctx context.Context, info *model.PersonalInfo) error {
	return s.repo.Upsert(ctx, info)
}
