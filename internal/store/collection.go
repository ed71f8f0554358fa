// Package store keeps named collections (favorites, shopping lists) in
// durable slots. A collection is read from its slot on first access, held in
// memory, and written back after every mutation.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bos-com/Recipe-management-System/internal/infrastructure/slot"
)

// Views are the derived values recomputed after each mutation.
type Views struct {
	Count   int `json:"count"`
	Items   int `json:"items,omitempty"`
	Checked int `json:"checked,omitempty"`
}

// ChangeListener is notified after a mutation has been applied and written.
type ChangeListener func(ctx context.Context, key string, views Views)

type collectionConfig[T any] struct {
	empty     func() T
	normalize func(T) T
	clone     func(T) T
	derive    func(T) Views
	logger    *slog.Logger
	listeners []ChangeListener
}

type Option[T any] func(*collectionConfig[T])

func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(c *collectionConfig[T]) {
		c.logger = logger
	}
}

func WithListener[T any](l ChangeListener) Option[T] {
	return func(c *collectionConfig[T]) {
		c.listeners = append(c.listeners, l)
	}
}

// WithNormalize fixes up a freshly decoded value, e.g. dropping duplicates.
func WithNormalize[T any](fn func(T) T) Option[T] {
	return func(c *collectionConfig[T]) {
		c.normalize = fn
	}
}

// WithClone makes Read hand out copies instead of the held value.
func WithClone[T any](fn func(T) T) Option[T] {
	return func(c *collectionConfig[T]) {
		c.clone = fn
	}
}

func WithDerive[T any](fn func(T) Views) Option[T] {
	return func(c *collectionConfig[T]) {
		c.derive = fn
	}
}

// Collection is one collection bound to one slot key. All access goes
// through its mutex, so a mutation never observes a stale value.
type Collection[T any] struct {
	slot   slot.Slot
	key    string
	config collectionConfig[T]

	mu     sync.Mutex
	loaded bool
	value  T
	views  Views
}

func NewCollection[T any](s slot.Slot, key string, empty func() T, opts ...Option[T]) *Collection[T] {
	cfg := collectionConfig[T]{
		empty:  empty,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return &Collection[T]{slot: s, key: key, config: cfg}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// Read returns the current value, loading it from the slot on first access.
func (c *Collection[T]) Read(ctx context.Context) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded(ctx)
	if c.config.clone != nil {
		return c.config.clone(c.value)
	}
	return c.value
}

func (c *Collection[T]) Views(ctx context.Context) Views {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded(ctx)
	return c.views
}

// Mutate replaces the value with fn(current) and writes it to the slot
// before returning. fn receives a private copy when a clone func is
// configured. If the write fails the in-memory value is still the new
// one and the error is returned. Listeners run after the lock is released.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(T) T) (T, error) {
	out, views, err := c.apply(ctx, fn)
	if err != nil {
		c.config.logger.ErrorContext(ctx, "store: persist collection", "key", c.key, "error", err)
		return out, err
	}
	for _, l := range c.config.listeners {
		l(ctx, c.key, views)
	}
	return out, nil
}

func (c *Collection[T]) apply(ctx context.Context, fn func(T) T) (T, Views, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded(ctx)

	current := c.value
	if c.config.clone != nil {
		current = c.config.clone(current)
	}
	next := fn(current)
	c.value = next
	c.views = c.derive(next)
	err := c.persist(ctx)

	out := next
	if c.config.clone != nil {
		out = c.config.clone(next)
	}
	return out, c.views, err
}

// Reload discards the in-memory value so the next access reads the slot.
func (c *Collection[T]) Reload() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
}

func (c *Collection[T]) ensureLoaded(ctx context.Context) {
	if c.loaded {
		return
	}
	c.value = c.load(ctx)
	c.views = c.derive(c.value)
	c.loaded = true
}

// load never fails: an absent, unreadable or malformed slot is treated as an
// empty collection.
func (c *Collection[T]) load(ctx context.Context) T {
	raw, found, err := c.slot.Get(ctx, c.key)
	if err != nil {
		c.config.logger.WarnContext(ctx, "store: read slot, starting empty", "key", c.key, "error", err)
		return c.config.empty()
	}
	if !found {
		return c.config.empty()
	}

	value := c.config.empty()
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		c.config.logger.WarnContext(ctx, "store: malformed slot, starting empty", "key", c.key, "error", err)
		return c.config.empty()
	}
	if c.config.normalize != nil {
		value = c.config.normalize(value)
	}
	return value
}

func (c *Collection[T]) persist(ctx context.Context) error {
	data, err := json.Marshal(c.value)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", c.key, err)
	}
	return c.slot.Set(ctx, c.key, string(data))
}

func (c *Collection[T]) derive(v T) Views {
	if c.config.derive == nil {
		return Views{}
	}
	return c.config.derive(v)
}
