package infrastructure

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// connectAttempts bounds startup retries against external services.
const connectAttempts = 5

// ConnectWithRetry runs connect with exponential backoff until it succeeds,
// ctx ends or the attempts run out.
func ConnectWithRetry[T any](ctx context.Context, name string, connect func() (T, error)) (T, error) {
	attempt := 0
	return backoff.Retry(ctx, func() (T, error) {
		attempt++
		v, err := connect()
		if err != nil {
			slog.WarnContext(ctx, "infrastructure: connect failed", "service", name, "attempt", attempt, "error", err)
		}
		return v, err
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(connectAttempts),
		backoff.WithMaxElapsedTime(30*time.Second),
	)
}
