package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"charity/internal/ratelimit/models"
)

const keyPrefix = "lockout:"

// RedisStore keeps one JSON record per key and lets Redis expire it.
type RedisStore struct {
	client redis.UniversalClient
}

func NewRedis(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (*models.Lockout, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get lockout: %w", err)
	}
	var rec models.Lockout
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode lockout: %w", err)
	}
	return &rec, nil
}

func (s *RedisStore) Save(ctx context.Context, rec *models.Lockout, ttl time.Duration) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode lockout: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+rec.Key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set lockout: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del lockout: %w", err)
	}
	return nil
}
