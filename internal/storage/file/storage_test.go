package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"hwidstore/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	cfg     Config
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	dir := s.T().TempDir()
	s.cfg = Config{
		Path:          filepath.Join(dir, "hwid_database.json"),
		AllowlistPath: filepath.Join(dir, "hwid_allowlist.json"),
	}
	s.storage = New(s.cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TestLoadSnapshotMissingFile() {
	snap, err := s.storage.LoadSnapshot(s.ctx)
	s.Require().NoError(err)

	s.Empty(snap.Records)
	s.Equal(model.SnapshotVersion, snap.Metadata.Version)
}

func (s *StorageSuite) TestSaveAndLoadSnapshot() {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	checked := now.Add(time.Hour)

	snap := model.NewSnapshot()
	snap.Records = append(snap.Records, &model.HwidRecord{
		HWID:        "ABC123",
		Executor:    "Synapse",
		Player:      &model.PlayerInfo{UserID: "7", Username: "bob"},
		CreatedAt:   now,
		LastSeen:    now,
		LastChecked: &checked,
		AccessCount: 2,
		Allowed:     true,
		Players: []model.PlayerSighting{
			{UserID: "7", Username: "bob", FirstSeen: now},
		},
	})

	s.Require().NoError(s.storage.SaveSnapshot(s.ctx, snap))

	loaded, err := s.storage.LoadSnapshot(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(loaded.Records, 1)

	rec := loaded.Records[0]
	s.Equal("ABC123", rec.HWID)
	s.Equal(2, rec.AccessCount)
	s.True(rec.Allowed)
	s.True(rec.CreatedAt.Equal(now))
	s.Require().NotNil(rec.LastChecked)
	s.True(rec.LastChecked.Equal(checked))
	s.Require().Len(rec.Players, 1)
	s.Equal("bob", rec.Players[0].Username)
}

func (s *StorageSuite) TestCorruptSnapshotFallsBackToEmpty() {
	s.Require().NoError(os.WriteFile(s.cfg.Path, []byte("{not json"), 0644))

	snap, err := s.storage.LoadSnapshot(s.ctx)
	s.Require().NoError(err)
	s.Empty(snap.Records)
}

func (s *StorageSuite) TestSaveLeavesNoTempFiles() {
	s.Require().NoError(s.storage.SaveSnapshot(s.ctx, model.NewSnapshot()))

	entries, err := os.ReadDir(filepath.Dir(s.cfg.Path))
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(filepath.Base(s.cfg.Path), entries[0].Name())
}

func (s *StorageSuite) TestSaveAndLoadAllowlist() {
	s.Require().NoError(s.storage.SaveAllowlist(s.ctx, []string{"A", "B"}))

	hwids, err := s.storage.LoadAllowlist(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"A", "B"}, hwids)
}

func (s *StorageSuite) TestCorruptAllowlistFallsBackToEmpty() {
	s.Require().NoError(os.WriteFile(s.cfg.AllowlistPath, []byte("??"), 0644))

	hwids, err := s.storage.LoadAllowlist(s.ctx)
	s.Require().NoError(err)
	s.Empty(hwids)
}
