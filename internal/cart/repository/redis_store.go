package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/velocita/storefront/internal/cart/domain"
	"github.com/velocita/storefront/pkg/logger"
)

// RedisSnapshotStore persists cart snapshots in Redis, one fixed key per
// cart session. Snapshots carry no TTL; a cart survives until cleared.
type RedisSnapshotStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisSnapshotStore creates a Redis-backed snapshot store
func NewRedisSnapshotStore(client *redis.Client, keyPrefix string) *RedisSnapshotStore {
	if keyPrefix == "" {
		keyPrefix = "velocita:cart"
	}
	return &RedisSnapshotStore{client: client, keyPrefix: keyPrefix}
}

func (s *RedisSnapshotStore) key(cartID string) string {
	return fmt.Sprintf("%s:%s", s.keyPrefix, cartID)
}

// Load reads the persisted snapshot for a cart
func (s *RedisSnapshotStore) Load(ctx context.Context, cartID string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(cartID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}
	return data, nil
}

// Save writes the snapshot for a cart, replacing any previous one
func (s *RedisSnapshotStore) Save(ctx context.Context, cartID string, data []byte) error {
	if err := s.client.Set(ctx, s.key(cartID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	logger.Debug(ctx).
		Str("cart_id", cartID).
		Int("bytes", len(data)).
		Msg("Cart snapshot persisted")
	return nil
}

// Delete removes the snapshot for a cart
func (s *RedisSnapshotStore) Delete(ctx context.Context, cartID string) error {
	if err := s.client.Del(ctx, s.key(cartID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart snapshot: %w", err)
	}
	return nil
}
