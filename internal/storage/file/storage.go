package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"hwidstore/internal/model"
	"hwidstore/internal/storage"
)

// Storage is a whole-file JSON implementation of the storage interface.
// Every save rewrites the document atomically via a temp file and rename.
//
// A missing or unreadable snapshot file yields an empty default registry
// rather than an error, so a corrupted store never blocks requests.
type Storage struct {
	cfg Config
}

// New creates a new file storage instance
func New(cfg Config) *Storage {
	return &Storage{cfg: cfg}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) LoadSnapshot(ctx context.Context) (*model.Snapshot, error) {
	data, err := os.ReadFile(s.cfg.Path)
	if err != nil {
		return model.NewSnapshot(), nil
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.NewSnapshot(), nil
	}
	if snap.Records == nil {
		snap.Records = []*model.HwidRecord{}
	}
	return &snap, nil
}

func (s *Storage) SaveSnapshot(ctx context.Context, snap *model.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(s.cfg.Path, data)
}

func (s *Storage) LoadAllowlist(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.cfg.AllowlistPath)
	if err != nil {
		return []string{}, nil
	}

	var hwids []string
	if err := json.Unmarshal(data, &hwids); err != nil {
		return []string{}, nil
	}
	return hwids, nil
}

func (s *Storage) SaveAllowlist(ctx context.Context, hwids []string) error {
	if hwids == nil {
		hwids = []string{}
	}
	data, err := json.MarshalIndent(hwids, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(s.cfg.AllowlistPath, data)
}

// writeAtomic writes data to a temp file in the target directory and renames
// it into place, so readers never observe a partially written document.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".hwid-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
