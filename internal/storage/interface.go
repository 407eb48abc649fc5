package storage

import (
	"context"

	"hwidstore/internal/model"
)

// Storage defines the interface for data persistence.
//
// The registry is persisted as a single whole document: LoadSnapshot returns
// the current registry state (an empty default when nothing has been stored
// or when the stored document is unreadable), and SaveSnapshot rewrites it in
// full. There is no partial-update primitive.
type Storage interface {
	// Registry snapshot operations
	LoadSnapshot(ctx context.Context) (*model.Snapshot, error)
	SaveSnapshot(ctx context.Context, snap *model.Snapshot) error

	// Flat allow-list operations
	LoadAllowlist(ctx context.Context) ([]string, error)
	SaveAllowlist(ctx context.Context, hwids []string) error
}
