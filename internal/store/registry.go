package store

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/bos-com/Recipe-management-System/internal/infrastructure/slot"
)

// Scope selects how collections are keyed.
type Scope string

const (
	// ScopeDevice shares one favorites set and one list collection across
	// every caller, which is how the catalog has always behaved.
	ScopeDevice Scope = "device"
	// ScopeUser keys each collection by the caller's user id. Guests still
	// share the device collections.
	ScopeUser Scope = "user"
)

func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScopeDevice:
		return ScopeDevice, nil
	case ScopeUser:
		return ScopeUser, nil
	}
	return "", fmt.Errorf("store: unknown collection scope %q", s)
}

// Registry owns the store instances so each slot key is wrapped by exactly
// one store.
type Registry struct {
	slot      slot.Slot
	scope     Scope
	logger    *slog.Logger
	listeners []ChangeListener

	mu        sync.Mutex
	favorites map[string]*FavoritesStore
	lists     map[string]*ShoppingListStore
}

func NewRegistry(s slot.Slot, scope Scope, logger *slog.Logger, listeners ...ChangeListener) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		slot:      s,
		scope:     scope,
		logger:    logger,
		listeners: listeners,
		favorites: make(map[string]*FavoritesStore),
		lists:     make(map[string]*ShoppingListStore),
	}
}

func (r *Registry) Scope() Scope {
	return r.scope
}

func (r *Registry) Favorites(userID string) *FavoritesStore {
	key := r.keyFor(FavoritesKey, userID)

	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.favorites[key]; ok {
		return f
	}
	f := NewFavoritesStore(r.slot, key, r.logger, r.listeners...)
	r.favorites[key] = f
	return f
}

func (r *Registry) ShoppingLists(userID string) *ShoppingListStore {
	key := r.keyFor(ShoppingListsKey, userID)

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.lists[key]; ok {
		return s
	}
	s := NewShoppingListStore(r.slot, key, r.logger, r.listeners...)
	r.lists[key] = s
	return s
}

func (r *Registry) keyFor(base, userID string) string {
	if r.scope != ScopeUser || userID == "" {
		return base
	}
	return base + ":" + userID
}
