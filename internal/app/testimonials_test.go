package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"southend_backend/internal/app"
	"southend_backend/internal/domain"
)

type fakeTestimonialRepo struct {
	items []domain.Testimonial
}

func (f *fakeTestimonialRepo) InsertTestimonial(ctx context.Context, t domain.Testimonial) error {
	f.items = append(f.items, t)
	return nil
}

func (f *fakeTestimonialRepo) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return append([]domain.Testimonial(nil), f.items...), nil
}

func (f *fakeTestimonialRepo) DeleteTestimonial(ctx context.Context, id string) error {
	for i, t := range f.items {
		if t.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func TestCreateTestimonial_ValidationAndDefaults(t *testing.T) {
	repo := &fakeTestimonialRepo{}
	svc := app.NewTestimonialService(repo, &fakeCache{}, 10*time.Minute)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "", "great stay"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing author, got %v", err)
	}
	if _, err := svc.Create(ctx, "Ana", "  "); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing text, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("no writes expected after validation failures")
	}

	before := time.Now().UTC()
	got, err := svc.Create(ctx, "Ana", "great stay")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated id")
	}
	if got.Avatar != domain.DefaultAvatar {
		t.Fatalf("avatar default: %q", got.Avatar)
	}
	if got.Date.Before(before) || got.Date.After(time.Now().UTC()) {
		t.Fatalf("date not defaulted to creation time: %v", got.Date)
	}
}

func TestTestimonialWrites_InvalidateCache(t *testing.T) {
	repo := &fakeTestimonialRepo{}
	cache := &fakeCache{}
	svc := app.NewTestimonialService(repo, cache, 10*time.Minute)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Ana", "great stay")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := cache.delCount("testimonials:all"); got != 1 {
		t.Fatalf("testimonials:all invalidated %d times after create, want 1", got)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := cache.delCount("testimonials:all"); got != 2 {
		t.Fatalf("testimonials:all invalidated %d times after delete, want 2", got)
	}
}

func TestDeleteTestimonial_Missing(t *testing.T) {
	repo := &fakeTestimonialRepo{}
	svc := app.NewTestimonialService(repo, &fakeCache{}, 10*time.Minute)

	if err := svc.Delete(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
