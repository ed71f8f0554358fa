package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bos-com/Recipe-management-System/internal/infrastructure/slot"
	"github.com/bos-com/Recipe-management-System/internal/store"
)

type published struct {
	subject string
	data    []byte
}

type fakePublisher struct {
	mu   sync.Mutex
	msgs []published
	err  error
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, published{subject: subject, data: data})
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSubjectFor(t *testing.T) {
	tests := []struct {
		key        string
		collection string
		subject    string
	}{
		{store.FavoritesKey, "favorites", SubjectFavoritesChanged},
		{store.FavoritesKey + ":user-1", "favorites", SubjectFavoritesChanged},
		{store.ShoppingListsKey, "shopping_lists", SubjectShoppingListsChanged},
		{store.ShoppingListsKey + ":user-1", "shopping_lists", SubjectShoppingListsChanged},
		{"unknown", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			collection, subject := subjectFor(tt.key)
			assert.Equal(t, tt.collection, collection)
			assert.Equal(t, tt.subject, subject)
		})
	}
}

func TestListener_PublishesEvent(t *testing.T) {
	pub := &fakePublisher{}
	events := NewEventPublisher(pub, quietLogger())
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	events.now = func() time.Time { return at }

	events.Listener()(context.Background(), store.ShoppingListsKey, store.Views{Count: 1, Items: 4, Checked: 2})

	require.Len(t, pub.msgs, 1)
	assert.Equal(t, SubjectShoppingListsChanged, pub.msgs[0].subject)

	var event CollectionChanged
	require.NoError(t, json.Unmarshal(pub.msgs[0].data, &event))
	assert.Equal(t, "shopping_lists", event.Collection)
	assert.Equal(t, store.ShoppingListsKey, event.Key)
	assert.Equal(t, 1, event.Count)
	assert.Equal(t, 4, event.Items)
	assert.Equal(t, 2, event.Checked)
	assert.True(t, at.Equal(event.At))
}

func TestListener_IgnoresUnknownKeyAndNilPublisher(t *testing.T) {
	pub := &fakePublisher{}
	NewEventPublisher(pub, quietLogger()).Listener()(context.Background(), "other", store.Views{})
	assert.Empty(t, pub.msgs)

	assert.NotPanics(t, func() {
		NewEventPublisher(nil, nil).Listener()(context.Background(), store.FavoritesKey, store.Views{Count: 1})
	})
}

func TestListener_PublishFailureDoesNotFailMutation(t *testing.T) {
	pub := &fakePublisher{err: errors.New("nats: connection closed")}
	registry := store.NewRegistry(slot.NewMemorySlot(), store.ScopeDevice, quietLogger(),
		NewEventPublisher(pub, quietLogger()).Listener())

	favorites := registry.Favorites("")
	err := favorites.Add(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, pub.msgs)
}

func TestListener_WiredIntoRegistry(t *testing.T) {
	pub := &fakePublisher{}
	registry := store.NewRegistry(slot.NewMemorySlot(), store.ScopeUser, quietLogger(),
		NewEventPublisher(pub, quietLogger()).Listener())

	err := registry.Favorites("user-1").Add(context.Background(), "42")
	require.NoError(t, err)

	require.Len(t, pub.msgs, 1)
	assert.Equal(t, SubjectFavoritesChanged, pub.msgs[0].subject)

	var event CollectionChanged
	require.NoError(t, json.Unmarshal(pub.msgs[0].data, &event))
	assert.Equal(t, store.FavoritesKey+":user-1", event.Key)
	assert.Equal(t, 1, event.Count)
}
