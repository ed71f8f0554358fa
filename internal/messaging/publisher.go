package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/bos-com/Recipe-management-System/internal/store"
)

const (
	SubjectFavoritesChanged     = "collections.favorites.changed"
	SubjectShoppingListsChanged = "collections.shopping_lists.changed"
)

// Publisher is the subset of *nats.Conn used for events.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// CollectionChanged is published after every persisted collection mutation.
type CollectionChanged struct {
	Collection string    `json:"collection"`
	Key        string    `json:"key"`
	Count      int       `json:"count"`
	Items      int       `json:"items"`
	Checked    int       `json:"checked"`
	At         time.Time `json:"at"`
}

type EventPublisher struct {
	pub    Publisher
	logger *slog.Logger
	now    func() time.Time
}

// NewEventPublisher returns a publisher that drops events when pub is nil.
func NewEventPublisher(pub Publisher, logger *slog.Logger) *EventPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventPublisher{pub: pub, logger: logger, now: time.Now}
}

// Listener adapts the publisher to the store's change hook. Publish failures
// are logged and never reach the mutating caller.
func (p *EventPublisher) Listener() store.ChangeListener {
	return func(ctx context.Context, key string, views store.Views) {
		if p.pub == nil {
			return
		}
		collection, subject := subjectFor(key)
		if subject == "" {
			p.logger.DebugContext(ctx, "messaging: no subject for key", "key", key)
			return
		}

		body, err := json.Marshal(CollectionChanged{
			Collection: collection,
			Key:        key,
			Count:      views.Count,
			Items:      views.Items,
			Checked:    views.Checked,
			At:         p.now().UTC(),
		})
		if err != nil {
			p.logger.ErrorContext(ctx, "messaging: encode event", "key", key, "error", err)
			return
		}
		if err := p.pub.Publish(subject, body); err != nil {
			p.logger.WarnContext(ctx, "messaging: publish failed", "subject", subject, "error", err)
			return
		}
		p.logger.DebugContext(ctx, "messaging: published", "subject", subject, "key", key)
	}
}

func subjectFor(key string) (collection, subject string) {
	base, _, _ := strings.Cut(key, ":")
	switch base {
	case store.FavoritesKey:
		return "favorites", SubjectFavoritesChanged
	case store.ShoppingListsKey:
		return "shopping_lists", SubjectShoppingListsChanged
	}
	return "", ""
}
