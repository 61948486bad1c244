package sessionstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store using Redis, allowing session state to be
// shared across multiple server instances.
//
// Usage example:
//
//	redisClient := redis.NewClient(&redis.Options{
//		Addr: "localhost:6379",
//	})
//
//	if err := redisClient.Ping(context.Background()).Err(); err != nil {
//		log.Fatal("Failed to connect to Redis:", err)
//	}
//
//	store := sessionstore.NewRedisStore(redisClient, "session:")
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisStore creates a new Redis-based session store.
// keyPrefix is optional and defaults to "session:" if empty.
func NewRedisStore(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "session:"
	}

	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (r *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session key: %w", err)
	}

	return value, nil
}

func (r *RedisStore) Save(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session key: %w", err)
	}

	return nil
}

func (r *RedisStore) Clear(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to clear session key: %w", err)
	}

	return nil
}
