package service

import (
	"context"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
)

// ProjectService manages portfolio projects.
type ProjectService interface {
	List(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id string) error
}

type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

func (s *projectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectServiceImpl) Create(ctx context.Context, p *model.Project) error {
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return s.repo.Create(ctx, p)
}

func (s *projectServiceImpl) Update(ctx context.Context, p *model.Project) error {
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return s.repo.Update(ctx, p)
}

func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
