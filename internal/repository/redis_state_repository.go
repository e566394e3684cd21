package repository

import (
	"context"
	"errors"
	"fmt"

	"lines-be/pkg/redis"
)

// RedisStateRepository stores each state key as a plain Redis string without expiry
type RedisStateRepository struct {
	client         *redis.Client
	installationID string
}

// NewRedisStateRepository creates a repository scoped to one installation
func NewRedisStateRepository(client *redis.Client, installationID string) *RedisStateRepository {
	return &RedisStateRepository{client: client, installationID: installationID}
}

func (r *RedisStateRepository) key(stateKey string) string {
	return r.client.KeyBuilder.KeyUserState(r.installationID, stateKey)
}

// Get reads a state key; a missing Redis key is reported as ok=false
func (r *RedisStateRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, r.key(key))
	if errors.Is(err, redis.ErrNil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get state %q: %w", key, err)
	}
	return []byte(val), true, nil
}

// Set writes a state key with no TTL
func (r *RedisStateRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, 0); err != nil {
		return fmt.Errorf("failed to set state %q: %w", key, err)
	}
	return nil
}

// Delete removes a state key
func (r *RedisStateRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Delete(ctx, r.key(key)); err != nil {
		return fmt.Errorf("failed to delete state %q: %w", key, err)
	}
	return nil
}
