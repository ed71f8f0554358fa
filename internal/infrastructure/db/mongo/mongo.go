package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bos-com/Recipe-management-System/internal/infrastructure"
)

const DefaultDatabase = "recipe-management"

// Connect dials uri and pings the primary, retrying with backoff.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10*time.Second).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}

	_, err = infrastructure.ConnectWithRetry(ctx, "mongo", func() (struct{}, error) {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return struct{}{}, client.Ping(pingCtx, nil)
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}

	slog.InfoContext(ctx, "mongo: connected")
	return client, nil
}
