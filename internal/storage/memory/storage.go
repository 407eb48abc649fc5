package memory

import (
	"context"
	"sync"

	"hwidstore/internal/model"
	"hwidstore/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	snapshot  *model.Snapshot
	allowlist []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) LoadSnapshot(ctx context.Context) (*model.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return model.NewSnapshot(), nil
	}
	return s.snapshot, nil
}

func (s *Storage) SaveSnapshot(ctx context.Context, snap *model.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snap
	return nil
}

func (s *Storage) LoadAllowlist(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.allowlist...), nil
}

func (s *Storage) SaveAllowlist(ctx context.Context, hwids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allowlist = append([]string(nil), hwids...)
	return nil
}
