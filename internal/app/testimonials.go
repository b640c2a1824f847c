package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"southend_backend/internal/domain"
)

const testimonialsListKey = "testimonials:all"

type TestimonialService struct {
	repo     domain.TestimonialRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewTestimonialService(r domain.TestimonialRepository, c domain.Cache, ttl time.Duration) *TestimonialService {
	return &TestimonialService{repo: r, cache: c, cacheTTL: ttl}
}

// Create stores a new testimonial. Author and text are required; avatar and
// date take their defaults. Testimonials are immutable once stored.
func (s *TestimonialService) Create(ctx context.Context, author, text string) (domain.Testimonial, error) {
	if strings.TrimSpace(author) == "" || strings.TrimSpace(text) == "" {
		return domain.Testimonial{}, fmt.Errorf("%w: name and message are required", domain.ErrValidation)
	}
	t := domain.Testimonial{
		ID:     uuid.NewString(),
		Author: author,
		Text:   text,
		Avatar: domain.DefaultAvatar,
		Date:   time.Now().UTC(),
	}
	if err := s.repo.InsertTestimonial(ctx, t); err != nil {
		return domain.Testimonial{}, err
	}
	_ = s.cache.Del(ctx, testimonialsListKey)
	return t, nil
}

// List returns testimonials newest first.
func (s *TestimonialService) List(ctx context.Context) ([]domain.Testimonial, error) {
	var ts []domain.Testimonial
	if ok, _ := s.cache.Get(ctx, testimonialsListKey, &ts); ok {
		return ts, nil
	}
	ts, err := s.repo.ListTestimonials(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, testimonialsListKey, ts, int(s.cacheTTL.Seconds()))
	return ts, nil
}

func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteTestimonial(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, testimonialsListKey)
	return nil
}
