package store

import (
	"context"
	"log/slog"
	"slices"

	"github.com/bos-com/Recipe-management-System/internal/infrastructure/slot"
)

// FavoritesKey is the slot key of the device-wide favorites set.
const FavoritesKey = "recipe_favorites"

// FavoritesStore is a set of recipe identifiers persisted as a JSON array.
// Insertion order is kept for stable listings but carries no meaning.
type FavoritesStore struct {
	c *Collection[[]string]
}

func NewFavoritesStore(s slot.Slot, key string, logger *slog.Logger, listeners ...ChangeListener) *FavoritesStore {
	opts := []Option[[]string]{
		WithLogger[[]string](logger),
		WithNormalize(dedupe),
		WithClone(func(ids []string) []string { return slices.Clone(ids) }),
		WithDerive(func(ids []string) Views { return Views{Count: len(ids)} }),
	}
	for _, l := range listeners {
		opts = append(opts, WithListener[[]string](l))
	}
	return &FavoritesStore{
		c: NewCollection(s, key, func() []string { return []string{} }, opts...),
	}
}

// Add inserts id. Adding an existing id leaves the set unchanged.
func (f *FavoritesStore) Add(ctx context.Context, id string) error {
	_, err := f.c.Mutate(ctx, func(ids []string) []string {
		if slices.Contains(ids, id) {
			return ids
		}
		return append(ids, id)
	})
	return err
}

// Remove deletes id when present.
func (f *FavoritesStore) Remove(ctx context.Context, id string) error {
	_, err := f.c.Mutate(ctx, func(ids []string) []string {
		return slices.DeleteFunc(ids, func(v string) bool { return v == id })
	})
	return err
}

// Toggle flips membership of id and reports whether it is now a favorite.
func (f *FavoritesStore) Toggle(ctx context.Context, id string) (bool, error) {
	ids, err := f.c.Mutate(ctx, func(ids []string) []string {
		if slices.Contains(ids, id) {
			return slices.DeleteFunc(ids, func(v string) bool { return v == id })
		}
		return append(ids, id)
	})
	return slices.Contains(ids, id), err
}

func (f *FavoritesStore) IsFavorite(ctx context.Context, id string) bool {
	return slices.Contains(f.c.Read(ctx), id)
}

func (f *FavoritesStore) List(ctx context.Context) []string {
	return f.c.Read(ctx)
}

func (f *FavoritesStore) Count(ctx context.Context) int {
	return f.c.Views(ctx).Count
}

func (f *FavoritesStore) Key() string {
	return f.c.Key()
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
