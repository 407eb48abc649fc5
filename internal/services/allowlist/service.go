package allowlist

import (
	"context"
	"fmt"
	"sync"

	"hwidstore/internal/model"
	"hwidstore/internal/storage"
)

// Service implements the flat authorization model: the authorized set is
// just a collection of opaque HWID strings with no per-record metadata.
// Add and Remove are both idempotent.
type Service struct {
	mu      sync.Mutex
	storage storage.Storage
}

// New creates a new allow-list service
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// Authorize reports whether the HWID is in the authorized set
func (s *Service) Authorize(ctx context.Context, hwid string) (bool, error) {
	if hwid == "" {
		return false, model.ErrMissingHWID
	}

	hwids, err := s.storage.LoadAllowlist(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}

	for _, h := range hwids {
		if h == hwid {
			return true, nil
		}
	}
	return false, nil
}

// Add inserts a HWID into the authorized set. Adding an already-present
// HWID is a no-op.
func (s *Service) Add(ctx context.Context, hwid string) error {
	if hwid == "" {
		return model.ErrMissingHWID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hwids, err := s.storage.LoadAllowlist(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}

	for _, h := range hwids {
		if h == hwid {
			return nil
		}
	}

	hwids = append(hwids, hwid)
	if err := s.storage.SaveAllowlist(ctx, hwids); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}
	return nil
}

// Remove deletes a HWID from the authorized set. Removing an absent HWID
// is a no-op, not an error.
func (s *Service) Remove(ctx context.Context, hwid string) error {
	if hwid == "" {
		return model.ErrMissingHWID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hwids, err := s.storage.LoadAllowlist(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}

	kept := hwids[:0]
	for _, h := range hwids {
		if h != hwid {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(hwids) {
		return nil
	}

	if err := s.storage.SaveAllowlist(ctx, kept); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}
	return nil
}
