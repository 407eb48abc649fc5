package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"hwidstore/internal/dependencies/clock"
	"hwidstore/internal/model"
	"hwidstore/internal/storage"
)

// recentWindow is how far back a record's lastSeen may be for it to count
// as recently active. The bound is strict: exactly 24h ago is excluded.
const recentWindow = 24 * time.Hour

// ActiveEntry is one recently-active record in a stats summary
type ActiveEntry struct {
	HWID     string  `json:"hwid"`
	Executor string  `json:"executor"`
	Username string  `json:"username"`
	HoursAgo float64 `json:"hoursAgo"`
}

// Summary aggregates registry-wide statistics
type Summary struct {
	TotalCount        int            `json:"totalCount"`
	AllowedCount      int            `json:"allowedCount"`
	ExecutorBreakdown map[string]int `json:"executorBreakdown"`
	RecentlyActive    []ActiveEntry  `json:"recentlyActive"`
}

// Service computes statistics over the registry
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new stats service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// Compute loads the current registry snapshot and aggregates it
func (s *Service) Compute(ctx context.Context) (*Summary, error) {
	snap, err := s.storage.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStorageFailure, err)
	}

	now := s.clock.Now()

	summary := &Summary{
		TotalCount:        len(snap.Records),
		ExecutorBreakdown: map[string]int{},
		RecentlyActive:    []ActiveEntry{},
	}

	for _, rec := range snap.Records {
		if rec.Allowed {
			summary.AllowedCount++
		}

		executor := rec.Executor
		if executor == "" {
			executor = model.UnknownExecutor
		}
		summary.ExecutorBreakdown[executor]++

		// Records that have never recorded a lastSeen are skipped
		if rec.LastSeen.IsZero() {
			continue
		}

		age := now.Sub(rec.LastSeen)
		if age >= recentWindow {
			continue
		}

		username := "Unknown"
		if rec.Player != nil && rec.Player.Username != "" {
			username = rec.Player.Username
		}

		summary.RecentlyActive = append(summary.RecentlyActive, ActiveEntry{
			HWID:     rec.HWID,
			Executor: executor,
			Username: username,
			HoursAgo: math.Round(age.Hours()*10) / 10,
		})
	}

	return summary, nil
}
