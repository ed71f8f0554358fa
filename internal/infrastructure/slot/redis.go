package slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "slot:"

// RedisSlot stores each slot as a plain string key without expiry.
type RedisSlot struct {
	client redis.Cmdable
}

func NewRedisSlot(client redis.Cmdable) *RedisSlot {
	return &RedisSlot{client: client}
}

func (r *RedisSlot) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("slot: redis get %s: %w", key, err)
	}
	return value, true, nil
}

func (r *RedisSlot) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("slot: redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisSlot) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("slot: redis del %s: %w", key, err)
	}
	return nil
}
