package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "cache:"
	tagPrefix = "cache:tag:"
)

// RedisBackend stores entries as plain strings with EX and tracks tags in sets.
type RedisBackend struct {
	client redis.UniversalClient
}

func NewRedisBackend(client redis.UniversalClient) *RedisBackend {
	return &RedisBackend{client: client}
}

func (r *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

func (r *RedisBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags []string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, keyPrefix+key, value, ttl)
		for _, tag := range tags {
			pipe.SAdd(ctx, tagPrefix+tag, key)
			pipe.Expire(ctx, tagPrefix+tag, ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *RedisBackend) InvalidateTags(ctx context.Context, tags ...string) error {
	for _, tag := range tags {
		members, err := r.client.SMembers(ctx, tagPrefix+tag).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("redis smembers: %w", err)
		}
		keys := make([]string, 0, len(members)+2)
		for _, m := range members {
			keys = append(keys, keyPrefix+m)
		}
		keys = append(keys, tagPrefix+tag, keyPrefix+tag)
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("redis del: %w", err)
		}
	}
	return nil
}
