package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

type RedisOptions struct {
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
}

// NewRedisClient connects using URL when given, otherwise host and port, and
// pings until the server answers.
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	options, err := redisClientOptions(opts)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(options)
	_, err = ConnectWithRetry(ctx, "redis", func() (string, error) {
		return client.Ping(ctx).Result()
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", options.Addr, err)
	}

	slog.InfoContext(ctx, "redis: connected", "addr", options.Addr, "db", options.DB)
	return client, nil
}

func redisClientOptions(opts RedisOptions) (*redis.Options, error) {
	var options *redis.Options
	if opts.URL != "" {
		parsed, err := redis.ParseURL(opts.URL)
		if err != nil {
			return nil, fmt.Errorf("redis: parse REDIS_URL: %w", err)
		}
		options = parsed
	} else {
		options = &redis.Options{
			Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
			Password: opts.Password,
			DB:       opts.DB,
		}
	}
	options.PoolSize = 10
	options.MinIdleConns = 2
	options.DialTimeout = 5 * time.Second
	options.ReadTimeout = 3 * time.Second
	options.WriteTimeout = 3 * time.Second
	return options, nil
}
