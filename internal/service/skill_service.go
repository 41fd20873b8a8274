package service

import (
	"context"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
)

// SkillService manages skill entries.
type SkillService interface {
	List(ctx context.Context) ([]*model.Skill, error)
	Create(ctx context.Context, sk *model.Skill) error
	Update(ctx context.Context, sk *model.Skill) error
	Delete(ctx context.Context, id string) error
}

type skillServiceImpl struct {
	repo repository.SkillRepository
}

// NewSkillService creates a SkillService backed by the given repository.
func NewSkillService(repo repository.SkillRepository) SkillService {
	return &skillServiceImpl{repo: repo}
}

func (s *skillServiceImpl) List(ctx context.Context) ([]*model.Skill, error) {
	return s.repo.List(ctx)
}

func (s *skillServiceImpl) Create(ctx context.Context, sk *model.Skill) error {
	return s.repo.Create(ctx, sk)
}

func (s *skillServiceImpl) Update(ctx context.Context, sk *model.Skill) error {
	return s.repo.Update(ctx, sk)
}

func (s *skillServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
