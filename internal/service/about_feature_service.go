package service

import (
	"context"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
)

// AboutFeatureService manages about-section highlight cards.
type AboutFeatureService interface {
	List(ctx context.Context) ([]*model.AboutFeature, error)
	Create(ctx context.Context, f *model.AboutFeature) error
	Update(ctx context.Context, f *model.AboutFeature) error
	Delete(ctx context.Context, id string) error
}

type aboutFeatureServiceImpl struct {
	repo repository.AboutFeatureRepository
}

// NewAboutFeatureService creates an AboutFeatureService backed by the given repository.
func NewAboutFeatureService(repo repository.AboutFeatureRepository) AboutFeatureService {
	return &aboutFeatureServiceImpl{repo: repo}
}

func (s *aboutFeatureServiceImpl) List(ctx context.Context) ([]*model.AboutFeature, error) {
	return s.repo.List(ctx)
}

func (s *aboutFeatureServiceImpl) Create(ctx context.Context, f *model.AboutFeature) error {
	return s.repo.Create(ctx, f)
}

func (s *aboutFeatureServiceImpl) Update(ctx context.Context, f *model.AboutFeature) error {
	return s.repo.Update(ctx, f)
}

func (s *aboutFeatureServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
