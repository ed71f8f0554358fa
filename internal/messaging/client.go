package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/bos-com/Recipe-management-System/internal/infrastructure"
)

const (
	clientName     = "recipe-service"
	connectTimeout = 5 * time.Second
	reconnectWait  = time.Second
	maxReconnects  = 10
	drainTimeout   = 10 * time.Second

	HealthSubject = "recipes.health"
)

// Connect dials NATS with reconnect handling and retries the initial dial
// with backoff.
func Connect(ctx context.Context, url string, logger *slog.Logger) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Name(clientName),
		nats.Timeout(connectTimeout),
		nats.ReconnectWait(reconnectWait),
		nats.MaxReconnects(maxReconnects),
		nats.DrainTimeout(drainTimeout),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats: disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats: reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ErrorHandler(func(_ *nats.Conn, sub *nats.Subscription, err error) {
			subject := ""
			if sub != nil {
				subject = sub.Subject
			}
			logger.Error("nats: async error", "subject", subject, "error", err)
		}),
	}

	nc, err := infrastructure.ConnectWithRetry(ctx, "nats", func() (*nats.Conn, error) {
		return nats.Connect(url, opts...)
	})
	if err != nil {
		return nil, fmt.Errorf("nats: connect %s: %w", url, err)
	}

	logger.InfoContext(ctx, "nats: connected", "url", nc.ConnectedUrl())
	return nc, nil
}

// Close drains pending publishes before closing.
func Close(nc *nats.Conn, logger *slog.Logger) {
	if nc == nil || nc.IsClosed() {
		return
	}
	if err := nc.Drain(); err != nil {
		logger.Warn("nats: drain failed", "error", err)
		nc.Close()
		return
	}
	logger.Info("nats: connection closed")
}

// RespondHealth answers requests on HealthSubject so operators can probe the
// service over the bus.
func RespondHealth(nc *nats.Conn) (*nats.Subscription, error) {
	return nc.Subscribe(HealthSubject, func(msg *nats.Msg) {
		body, _ := json.Marshal(map[string]string{
			"status":    "healthy",
			"service":   clientName,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		_ = msg.Respond(body)
	})
}
