package store

import (
	"context"
	"log/slog"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
	"github.com/bos-com/Recipe-management-System/internal/infrastructure/slot"
)

// ShoppingListsKey is the slot key of the device-wide shopping lists.
const ShoppingListsKey = "shopping_lists"

// ShoppingListStore is an ordered sequence of shopping lists persisted as a
// JSON array. Operations on a missing list or item are no-ops.
type ShoppingListStore struct {
	c *Collection[[]entities.ShoppingList]
}

func NewShoppingListStore(s slot.Slot, key string, logger *slog.Logger, listeners ...ChangeListener) *ShoppingListStore {
	opts := []Option[[]entities.ShoppingList]{
		WithLogger[[]entities.ShoppingList](logger),
		WithNormalize(normalizeLists),
		WithClone(cloneLists),
		WithDerive(deriveLists),
	}
	for _, l := range listeners {
		opts = append(opts, WithListener[[]entities.ShoppingList](l))
	}
	return &ShoppingListStore{
		c: NewCollection(s, key, func() []entities.ShoppingList { return []entities.ShoppingList{} }, opts...),
	}
}

// CreateList appends a new list with one unchecked item per ingredient and
// returns it. The list is in memory even when the returned error is set.
func (s *ShoppingListStore) CreateList(ctx context.Context, name string, recipeIDs, ingredients []string) (entities.ShoppingList, error) {
	list := entities.NewShoppingList(name, recipeIDs, ingredients)
	_, err := s.c.Mutate(ctx, func(lists []entities.ShoppingList) []entities.ShoppingList {
		return append(lists, list.Clone())
	})
	return list, err
}

func (s *ShoppingListStore) DeleteList(ctx context.Context, listID string) error {
	_, err := s.c.Mutate(ctx, func(lists []entities.ShoppingList) []entities.ShoppingList {
		out := lists[:0]
		for _, l := range lists {
			if l.Id != listID {
				out = append(out, l)
			}
		}
		return out
	})
	return err
}

// ToggleItem flips one item's checked flag and reports whether the list and
// item were found.
func (s *ShoppingListStore) ToggleItem(ctx context.Context, listID, itemID string) (bool, error) {
	found := false
	_, err := s.c.Mutate(ctx, func(lists []entities.ShoppingList) []entities.ShoppingList {
		for i := range lists {
			if lists[i].Id == listID {
				found = lists[i].ToggleItem(itemID)
				break
			}
		}
		return lists
	})
	return found, err
}

// UpdateList replaces the items of listID and reports whether it exists.
func (s *ShoppingListStore) UpdateList(ctx context.Context, listID string, items []entities.ShoppingListItem) (bool, error) {
	found := false
	_, err := s.c.Mutate(ctx, func(lists []entities.ShoppingList) []entities.ShoppingList {
		for i := range lists {
			if lists[i].Id == listID {
				lists[i].ReplaceItems(items)
				found = true
				break
			}
		}
		return lists
	})
	return found, err
}

func (s *ShoppingListStore) Lists(ctx context.Context) []entities.ShoppingList {
	return s.c.Read(ctx)
}

// Get returns the list with listID, or false when there is none.
func (s *ShoppingListStore) Get(ctx context.Context, listID string) (entities.ShoppingList, bool) {
	for _, l := range s.c.Read(ctx) {
		if l.Id == listID {
			return l, true
		}
	}
	return entities.ShoppingList{}, false
}

func (s *ShoppingListStore) Views(ctx context.Context) Views {
	return s.c.Views(ctx)
}

func (s *ShoppingListStore) Key() string {
	return s.c.Key()
}

func cloneLists(lists []entities.ShoppingList) []entities.ShoppingList {
	out := make([]entities.ShoppingList, len(lists))
	for i, l := range lists {
		out[i] = l.Clone()
	}
	return out
}

func deriveLists(lists []entities.ShoppingList) Views {
	v := Views{Count: len(lists)}
	for i := range lists {
		v.Items += len(lists[i].Items)
		v.Checked += lists[i].CheckedCount()
	}
	return v
}

// normalizeLists drops lists without an identifier and restores item
// identifier uniqueness on data written by older clients.
func normalizeLists(lists []entities.ShoppingList) []entities.ShoppingList {
	out := make([]entities.ShoppingList, 0, len(lists))
	for _, l := range lists {
		if l.Id == "" {
			continue
		}
		if l.Items == nil {
			l.Items = []entities.ShoppingListItem{}
		}
		if l.RecipeIds == nil {
			l.RecipeIds = []string{}
		}
		if hasDuplicateItemIDs(l.Items) {
			updated := l.UpdatedAt
			l.ReplaceItems(l.Items)
			l.UpdatedAt = updated
		}
		out = append(out, l)
	}
	return out
}

func hasDuplicateItemIDs(items []entities.ShoppingListItem) bool {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.Id]; ok || item.Id == "" {
			return true
		}
		seen[item.Id] = struct{}{}
	}
	return false
}
