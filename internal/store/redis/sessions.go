package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/leadscout/internal/session"
	"github.com/MrSnakeDoc/leadscout/internal/workspace"
)

// Store keeps session snapshots in Redis.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Save stores a snapshot for ttl and records the id in the session set.
func (s *Store) Save(ctx context.Context, id string, snap workspace.Snapshot, ttl time.Duration) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", id, err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, SessionKey(id), data, ttl)
	pipe.SAdd(ctx, AllSessionsKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session %s: %w", id, err)
	}
	return nil
}

// Load returns the snapshot of a session, or session.ErrSnapshotNotFound.
func (s *Store) Load(ctx context.Context, id string) (workspace.Snapshot, error) {
	data, err := s.client.Get(ctx, SessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return workspace.Snapshot{}, session.ErrSnapshotNotFound
		}
		return workspace.Snapshot{}, fmt.Errorf("failed to get session %s: %w", id, err)
	}

	var snap workspace.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return workspace.Snapshot{}, fmt.Errorf("failed to unmarshal session %s: %w", id, err)
	}
	return snap, nil
}

// Touch extends the expiry of a stored snapshot.
func (s *Store) Touch(ctx context.Context, id string, ttl time.Duration) error {
	ok, err := s.client.Expire(ctx, SessionKey(id), ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to refresh session %s: %w", id, err)
	}
	if !ok {
		return session.ErrSnapshotNotFound
	}
	return nil
}

// Delete removes a session snapshot.
func (s *Store) Delete(ctx context.Context, id string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, SessionKey(id))
	pipe.SRem(ctx, AllSessionsKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}

// Count returns the number of ids in the session set.
func (s *Store) Count(ctx context.Context) (int64, error) {
	n, err := s.client.SCard(ctx, AllSessionsKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return n, nil
}

// Prune drops ids from the session set whose snapshot has expired and
// returns how many were removed.
func (s *Store) Prune(ctx context.Context) (int, error) {
	ids, err := s.client.SMembers(ctx, AllSessionsKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get session IDs: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	pipe := s.client.Pipeline()
	exists := make([]*redis.IntCmd, len(ids))
	for i, id := range ids {
		exists[i] = pipe.Exists(ctx, SessionKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to check sessions: %w", err)
	}

	var stale []interface{}
	for i, cmd := range exists {
		if cmd.Val() == 0 {
			stale = append(stale, ids[i])
		}
	}
	if len(stale) == 0 {
		return 0, nil
	}

	if err := s.client.SRem(ctx, AllSessionsKey(), stale...).Err(); err != nil {
		return 0, fmt.Errorf("failed to prune session set: %w", err)
	}
	return len(stale), nil
}

// Ping checks the connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

var _ session.SnapshotStore = (*Store)(nil)
