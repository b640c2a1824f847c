package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"southend_backend/internal/domain"
)

// HotelService owns the create-or-update contract for hotel records and the
// image-list merge policy. Every write invalidates the read cache.
type HotelService struct {
	repo     domain.HotelRepository
	cache    domain.Cache
	cacheTTL time.Duration

	strictNames          bool
	overwriteDescOnEmpty bool
}

func NewHotelService(r domain.HotelRepository, c domain.Cache, ttl time.Duration, strictNames, overwriteDescOnEmpty bool) *HotelService {
	return &HotelService{repo: r, cache: c, cacheTTL: ttl, strictNames: strictNames, overwriteDescOnEmpty: overwriteDescOnEmpty}
}

type UpsertInput struct {
	Name        string
	Description string
	Location    string
	Images      []string
}

// Upsert creates a record for in.Name or merges into the existing one.
// The returned bool reports whether a new record was created.
//
// Merge rules for an existing record:
//   - description: overwritten per the overwriteDescOnEmpty policy
//   - location: overwritten only when a non-empty value is supplied
//   - images: existing first, then input images not already present,
//     in input order, compared by exact string equality
func (s *HotelService) Upsert(ctx context.Context, in UpsertInput) (domain.Hotel, bool, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Hotel{}, false, fmt.Errorf("%w: hotel name is required", domain.ErrValidation)
	}
	if s.strictNames && !domain.NameAllowed(name) {
		return domain.Hotel{}, false, domain.ErrInvalidName
	}
	valid := validImages(in.Images)

	existing, err := s.repo.GetHotel(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		h := domain.Hotel{Name: name, Description: in.Description, Images: valid}
		if loc := strings.TrimSpace(in.Location); loc != "" {
			h.Location = &loc
		}
		created, err := s.repo.CreateHotel(ctx, h)
		if err != nil {
			return domain.Hotel{}, false, err
		}
		s.invalidate(ctx, name)
		return created, true, nil
	}
	if err != nil {
		return domain.Hotel{}, false, err
	}

	if s.overwriteDescOnEmpty || in.Description != "" {
		existing.Description = in.Description
	}
	if loc := strings.TrimSpace(in.Location); loc != "" {
		existing.Location = &loc
	}
	existing.Images = append(existing.Images, newOnly(valid, existing.Images)...)

	updated, err := s.repo.UpdateHotel(ctx, existing)
	if err != nil {
		return domain.Hotel{}, false, err
	}
	s.invalidate(ctx, name)
	return updated, false, nil
}

// AddImages appends the non-duplicate subset of images to the hotel and
// reports which URLs were actually added.
func (s *HotelService) AddImages(ctx context.Context, name string, images []string) (domain.Hotel, []string, error) {
	valid := validImages(images)
	if len(valid) == 0 {
		return domain.Hotel{}, nil, domain.ErrNoValidImages
	}
	h, err := s.repo.GetHotel(ctx, name)
	if err != nil {
		return domain.Hotel{}, nil, err
	}
	added := newOnly(valid, h.Images)
	if len(added) == 0 {
		return domain.Hotel{}, nil, domain.ErrAllDuplicate
	}
	h.Images = append(h.Images, added...)
	updated, err := s.repo.UpdateHotel(ctx, h)
	if err != nil {
		return domain.Hotel{}, nil, err
	}
	s.invalidate(ctx, name)
	return updated, added, nil
}

// RemoveImage drops every exact occurrence of url. A url that was never
// present is not an error.
func (s *HotelService) RemoveImage(ctx context.Context, name, url string) (domain.Hotel, error) {
	h, err := s.repo.GetHotel(ctx, name)
	if err != nil {
		return domain.Hotel{}, err
	}
	kept := make([]string, 0, len(h.Images))
	for _, img := range h.Images {
		if img != url {
			kept = append(kept, img)
		}
	}
	h.Images = kept
	updated, err := s.repo.UpdateHotel(ctx, h)
	if err != nil {
		return domain.Hotel{}, err
	}
	s.invalidate(ctx, name)
	return updated, nil
}

// UpdateDescription overwrites unconditionally, no merge logic.
func (s *HotelService) UpdateDescription(ctx context.Context, name, description string) (domain.Hotel, error) {
	h, err := s.repo.GetHotel(ctx, name)
	if err != nil {
		return domain.Hotel{}, err
	}
	h.Description = description
	updated, err := s.repo.UpdateHotel(ctx, h)
	if err != nil {
		return domain.Hotel{}, err
	}
	s.invalidate(ctx, name)
	return updated, nil
}

func (s *HotelService) Delete(ctx context.Context, name string) error {
	if err := s.repo.DeleteHotel(ctx, name); err != nil {
		return err
	}
	s.invalidate(ctx, name)
	return nil
}

func (s *HotelService) Get(ctx context.Context, name string) (domain.Hotel, error) {
	key := "hotel:" + name
	var h domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &h); ok {
		return h, nil
	}
	h, err := s.repo.GetHotel(ctx, name)
	if err != nil {
		return domain.Hotel{}, err
	}
	_ = s.cache.Set(ctx, key, h, int(s.cacheTTL.Seconds()))
	return h, nil
}

func (s *HotelService) List(ctx context.Context) ([]domain.Hotel, error) {
	var hs []domain.Hotel
	if ok, _ := s.cache.Get(ctx, hotelsListKey, &hs); ok {
		return hs, nil
	}
	hs, err := s.repo.ListHotels(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, hotelsListKey, hs, int(s.cacheTTL.Seconds()))
	return hs, nil
}

const hotelsListKey = "hotels:all"

func (s *HotelService) invalidate(ctx context.Context, name string) {
	_ = s.cache.Del(ctx, "hotel:"+name)
	_ = s.cache.Del(ctx, hotelsListKey)
}

// validImages keeps non-blank entries, first occurrence only, order preserved.
func validImages(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, img := range in {
		if strings.TrimSpace(img) == "" {
			continue
		}
		if _, dup := seen[img]; dup {
			continue
		}
		seen[img] = struct{}{}
		out = append(out, img)
	}
	return out
}

// newOnly is the set difference candidates \ existing, in candidate order.
func newOnly(candidates, existing []string) []string {
	have := make(map[string]struct{}, len(existing))
	for _, img := range existing {
		have[img] = struct{}{}
	}
	var out []string
	for _, img := range candidates {
		if _, ok := have[img]; !ok {
			out = append(out, img)
		}
	}
	return out
}
