package service

import (
	"context"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
)

// TestimonialService manages client testimonials.
type TestimonialService interface {
	List(ctx context.Context) ([]*model.Testimonial, error)
	Create(ctx context.Context, t *model.Testimonial) error
	Update(ctx context.Context, t *model.Testimonial) error
	Delete(ctx context.Context, id string) error
}

type testimonialServiceImpl struct {
	repo repository.TestimonialRepository
}

// NewTestimonialService creates a TestimonialService backed by the given repository.
func NewTestimonialService(repo repository.TestimonialRepository) TestimonialService {
	return &testimonialServiceImpl{repo: repo}
}

func (s *testimonialServiceImpl) List(ctx context.Context) ([]*model.Testimonial, error) {
	return s.repo.List(ctx)
}

func (s *testimonialServiceImpl) Create(ctx context.Context, t *model.Testimonial) error {
	return s.repo.Create(ctx, t)
}

func (s *testimonialServiceImpl) Update(ctx context.Context, t *model.Testimonial) error {
	return s.repo.Update(ctx, t)
}

func (s *testimonialServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
