package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"hwidstore/internal/model"
	"hwidstore/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// The registry snapshot is stored as one JSON document under a single key;
// the flat allow-list is a Redis SET.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) LoadSnapshot(ctx context.Context) (*model.Snapshot, error) {
	data, err := s.client.Get(ctx, snapshotKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.NewSnapshot(), nil
		}
		return nil, err
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// Unreadable document falls back to an empty registry
		return model.NewSnapshot(), nil
	}
	if snap.Records == nil {
		snap.Records = []*model.HwidRecord{}
	}
	return &snap, nil
}

func (s *Storage) SaveSnapshot(ctx context.Context, snap *model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, snapshotKey(), data, 0).Err()
}

func (s *Storage) LoadAllowlist(ctx context.Context) ([]string, error) {
	hwids, err := s.client.SMembers(ctx, allowlistKey()).Result()
	if err != nil {
		return nil, err
	}

	// SMembers order is unspecified
	sort.Strings(hwids)
	return hwids, nil
}

func (s *Storage) SaveAllowlist(ctx context.Context, hwids []string) error {
	// Rewrite the whole set atomically
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, allowlistKey())
	if len(hwids) > 0 {
		members := make([]any, len(hwids))
		for i, h := range hwids {
			members[i] = h
		}
		pipe.SAdd(ctx, allowlistKey(), members...)
	}
	_, err := pipe.Exec(ctx)
	return err
}
