// Package popupfile persists the popup setting as one flat JSON file at a
// fixed path. Writes are whole-file replacements with no locking; write
// frequency is low enough that concurrent writers are an accepted gap.
package popupfile

import (
	"encoding/json"
	"errors"
	"os"

	"southend_backend/internal/domain"
)

type Store struct{ path string }

func New(path string) *Store { return &Store{path: path} }

// Get returns the persisted popup, or the inactive default when no popup has
// ever been set.
func (s *Store) Get() (domain.Popup, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.Popup{Active: false}, nil
	}
	if err != nil {
		return domain.Popup{}, err
	}
	var p domain.Popup
	if err := json.Unmarshal(b, &p); err != nil {
		return domain.Popup{}, err
	}
	return p, nil
}

func (s *Store) Set(p domain.Popup) error {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}

// Clear removes the persisted record; clearing an absent popup is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
