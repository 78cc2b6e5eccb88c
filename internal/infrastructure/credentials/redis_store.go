package credentials

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps credential namespaces in Redis hashes. Suitable for
// deployments where multiple console instances share upstream sessions.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisStore creates a Redis-backed credential store
func NewRedisStore(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "credentials:"
	}
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (s *RedisStore) namespaceKey(service Service) string {
	return s.keyPrefix + string(service)
}

// Get returns the stored value and whether it was present
func (s *RedisStore) Get(ctx context.Context, service Service, key string) (string, bool, error) {
	value, err := s.client.HGet(ctx, s.namespaceKey(service), key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("credentials: get %s/%s: %w", service, key, err)
	}
	return value, true, nil
}

// Set stores a value under the service namespace
func (s *RedisStore) Set(ctx context.Context, service Service, key, value string) error {
	if err := s.client.HSet(ctx, s.namespaceKey(service), key, value).Err(); err != nil {
		return fmt.Errorf("credentials: set %s/%s: %w", service, key, err)
	}
	return nil
}

// Delete removes the given keys from the service namespace
func (s *RedisStore) Delete(ctx context.Context, service Service, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.HDel(ctx, s.namespaceKey(service), keys...).Err(); err != nil {
		return fmt.Errorf("credentials: delete from %s: %w", service, err)
	}
	return nil
}

// Clear removes every key in the service namespace
func (s *RedisStore) Clear(ctx context.Context, service Service) error {
	if err := s.client.Del(ctx, s.namespaceKey(service)).Err(); err != nil {
		return fmt.Errorf("credentials: clear %s: %w", service, err)
	}
	return nil
}
