package model

import "time"

// UnknownExecutor is the label applied to records whose submitting client
// did not identify its executor.
const UnknownExecutor = "Unknown"

// SnapshotVersion is the schema version written into new snapshots.
const SnapshotVersion = "1.0"

// PlayerInfo describes the most recent player seen submitting from a HWID.
// It is replaced wholesale on each submission that carries player data.
type PlayerInfo struct {
	UserID   string `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`
}

// PlayerSighting is one entry in a record's append-only player history.
// FirstSeen is immutable once recorded.
type PlayerSighting struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	FirstSeen time.Time `json:"firstSeen"`
}

// HwidRecord is the registry entry for one unique hardware identifier.
type HwidRecord struct {
	HWID     string      `json:"hwid"`
	Executor string      `json:"executor"`
	Player   *PlayerInfo `json:"player,omitempty"`

	// Game and System hold arbitrary client-submitted metadata. They are
	// replaced wholesale on update, never deep-merged.
	Game   map[string]any `json:"game,omitempty"`
	System map[string]any `json:"system,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	LastSeen    time.Time  `json:"lastSeen"`
	LastChecked *time.Time `json:"lastChecked,omitempty"`

	// AccessCount is the number of submission events observed for this
	// HWID. Authorization checks do not increment it.
	AccessCount int `json:"accessCount"`

	Allowed      bool       `json:"allowed"`
	AllowedAt    *time.Time `json:"allowedAt,omitempty"`
	DisallowedAt *time.Time `json:"disallowedAt,omitempty"`

	Players []PlayerSighting `json:"players"`
}

// HasPlayer reports whether the record's player history already contains
// the given user ID.
func (r *HwidRecord) HasPlayer(userID string) bool {
	for _, p := range r.Players {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// SnapshotMetadata describes a registry snapshot document.
type SnapshotMetadata struct {
	CreatedAt time.Time `json:"createdAt"`
	Version   string    `json:"version"`
}

// Snapshot is the full persisted registry: every record plus metadata.
// It is rewritten whole on every mutation.
type Snapshot struct {
	Records  []*HwidRecord    `json:"hwids"`
	Metadata SnapshotMetadata `json:"metadata"`
}

// NewSnapshot returns an empty registry snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Records: []*HwidRecord{},
		Metadata: SnapshotMetadata{
			CreatedAt: time.Now(),
			Version:   SnapshotVersion,
		},
	}
}

// Find returns the record for the given HWID, or nil if absent.
func (s *Snapshot) Find(hwid string) *HwidRecord {
	for _, r := range s.Records {
		if r.HWID == hwid {
			return r
		}
	}
	return nil
}
