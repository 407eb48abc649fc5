package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hwidstore/internal/dependencies/clock"
	"hwidstore/internal/model"
	"hwidstore/internal/storage"
)

// SubmitInput carries one HWID submission. Zero-valued optional fields mean
// "not supplied": an omitted field never clears the stored value.
type SubmitInput struct {
	HWID     string
	Executor string
	Player   *model.PlayerInfo
	Game     map[string]any
	System   map[string]any
}

// CheckResult is the outcome of an authorization check. Exists and Allowed
// are reported separately so a caller can distinguish an unknown HWID from
// a known-but-disallowed one.
type CheckResult struct {
	Exists    bool
	Allowed   bool
	FirstSeen *time.Time
	Executor  string
}

// Controller owns the HWID registry: upsert, lookup, and the allow/disallow
// state transitions. Every mutation is a whole-snapshot load-mutate-save, so
// all mutators are serialized behind a single mutex to avoid lost updates
// from concurrent read-modify-write.
type Controller struct {
	mu      sync.Mutex
	storage storage.Storage
	clock   clock.Clock
}

// NewController creates a new registry controller
func NewController(storage storage.Storage, clock clock.Clock) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
	}
}

// Upsert records a submission for the given HWID and returns the resulting
// record plus the total number of records in the registry.
//
// Merge rules for a known HWID: executor, player, game, and system are
// replaced when supplied and preserved when omitted; lastSeen is stamped
// and accessCount incremented on every call; the player history gains an
// entry only for a previously unseen userId, and an existing entry keeps
// its original firstSeen and username.
func (c *Controller) Upsert(ctx context.Context, in SubmitInput) (*model.HwidRecord, int, error) {
	if in.HWID == "" {
		return nil, 0, model.ErrMissingHWID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	snap, err := c.storage.LoadSnapshot(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}

	now := c.clock.Now()

	rec := snap.Find(in.HWID)
	if rec != nil {
		if in.Executor != "" {
			rec.Executor = in.Executor
		}
		if in.Player != nil {
			rec.Player = in.Player
		}
		if in.Game != nil {
			rec.Game = in.Game
		}
		if in.System != nil {
			rec.System = in.System
		}
		rec.LastSeen = now
		rec.AccessCount++

		if in.Player != nil && in.Player.UserID != "" && !rec.HasPlayer(in.Player.UserID) {
			rec.Players = append(rec.Players, model.PlayerSighting{
				UserID:    in.Player.UserID,
				Username:  usernameOrUnknown(in.Player.Username),
				FirstSeen: now,
			})
		}
	} else {
		rec = &model.HwidRecord{
			HWID:        in.HWID,
			Executor:    model.UnknownExecutor,
			Player:      in.Player,
			Game:        in.Game,
			System:      in.System,
			CreatedAt:   now,
			LastSeen:    now,
			AccessCount: 1,
			Allowed:     false,
			Players:     []model.PlayerSighting{},
		}
		if in.Executor != "" {
			rec.Executor = in.Executor
		}
		if in.Player != nil && in.Player.UserID != "" {
			rec.Players = append(rec.Players, model.PlayerSighting{
				UserID:    in.Player.UserID,
				Username:  usernameOrUnknown(in.Player.Username),
				FirstSeen: now,
			})
		}
		snap.Records = append(snap.Records, rec)
	}

	if err := c.storage.SaveSnapshot(ctx, snap); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}

	return rec, len(snap.Records), nil
}

// Check reports whether a HWID exists and is currently allowed. When the
// record exists its lastChecked stamp is updated and the registry is
// persisted: this read deliberately triggers a write.
func (c *Controller) Check(ctx context.Context, hwid string) (CheckResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap, err := c.storage.LoadSnapshot(ctx)
	if err != nil {
		return CheckResult{}, fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}

	rec := snap.Find(hwid)
	if rec == nil {
		return CheckResult{Exists: false, Allowed: false}, nil
	}

	now := c.clock.Now()
	rec.LastChecked = &now

	if err := c.storage.SaveSnapshot(ctx, snap); err != nil {
		return CheckResult{}, fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}

	firstSeen := rec.CreatedAt
	return CheckResult{
		Exists:    true,
		Allowed:   rec.Allowed,
		FirstSeen: &firstSeen,
		Executor:  rec.Executor,
	}, nil
}

// SetAllowed flips the allowed flag for an existing HWID and stamps the
// transition time. It never creates a record: an absent HWID is an error.
func (c *Controller) SetAllowed(ctx context.Context, hwid string, allowed bool) (*model.HwidRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap, err := c.storage.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}

	rec := snap.Find(hwid)
	if rec == nil {
		return nil, model.ErrRecordNotFound
	}

	now := c.clock.Now()
	rec.Allowed = allowed
	if allowed {
		rec.AllowedAt = &now
	} else {
		rec.DisallowedAt = &now
	}

	if err := c.storage.SaveSnapshot(ctx, snap); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}

	return rec, nil
}

// List returns the full registry snapshot
func (c *Controller) List(ctx context.Context) (*model.Snapshot, error) {
	snap, err := c.storage.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}
	return snap, nil
}

func usernameOrUnknown(username string) string {
	if username == "" {
		return "Unknown"
	}
	return username
}
