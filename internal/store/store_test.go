package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
	"github.com/bos-com/Recipe-management-System/internal/infrastructure/slot"
)

// failingSlot reads from an inner slot but fails every write.
type failingSlot struct {
	slot.Slot
}

func (failingSlot) Set(context.Context, string, string) error {
	return errors.New("quota exceeded")
}

type brokenReadSlot struct {
	slot.Slot
}

func (brokenReadSlot) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}

func TestFavorites_AddIdempotent(t *testing.T) {
	ctx := context.Background()
	s := slot.NewMemorySlot()
	f := NewFavoritesStore(s, FavoritesKey, nil)

	require.NoError(t, f.Add(ctx, "x"))
	once := f.List(ctx)
	require.NoError(t, f.Add(ctx, "x"))

	assert.Equal(t, once, f.List(ctx))
	assert.True(t, f.IsFavorite(ctx, "x"))
	assert.Equal(t, 1, f.Count(ctx))

	raw, found, err := s.Get(ctx, FavoritesKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `["x"]`, raw)
}

func TestFavorites_Remove(t *testing.T) {
	ctx := context.Background()
	f := NewFavoritesStore(slot.NewMemorySlot(), FavoritesKey, nil)

	require.NoError(t, f.Add(ctx, "a"))
	require.NoError(t, f.Add(ctx, "b"))
	require.NoError(t, f.Remove(ctx, "a"))
	require.NoError(t, f.Remove(ctx, "a"))

	assert.Equal(t, []string{"b"}, f.List(ctx))
	assert.False(t, f.IsFavorite(ctx, "a"))
}

func TestFavorites_Toggle(t *testing.T) {
	ctx := context.Background()
	f := NewFavoritesStore(slot.NewMemorySlot(), FavoritesKey, nil)

	on, err := f.Toggle(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, on)

	on, err = f.Toggle(ctx, "r1")
	require.NoError(t, err)
	assert.False(t, on)
	assert.Empty(t, f.List(ctx))
}

func TestFavorites_LoadDropsDuplicates(t *testing.T) {
	ctx := context.Background()
	s := slot.NewMemorySlot()
	require.NoError(t, s.Set(ctx, FavoritesKey, `["a","b","a"]`))

	f := NewFavoritesStore(s, FavoritesKey, nil)
	assert.Equal(t, []string{"a", "b"}, f.List(ctx))
	assert.Equal(t, 2, f.Count(ctx))
}

func TestFavorites_ListIsACopy(t *testing.T) {
	ctx := context.Background()
	f := NewFavoritesStore(slot.NewMemorySlot(), FavoritesKey, nil)
	require.NoError(t, f.Add(ctx, "a"))

	ids := f.List(ctx)
	ids[0] = "tampered"
	assert.True(t, f.IsFavorite(ctx, "a"))
}

func TestMalformedSlotLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	s := slot.NewMemorySlot()
	require.NoError(t, s.Set(ctx, FavoritesKey, `["a","b`))
	require.NoError(t, s.Set(ctx, ShoppingListsKey, `{"not":"a list"}`))

	f := NewFavoritesStore(s, FavoritesKey, nil)
	assert.Empty(t, f.List(ctx))
	assert.NotNil(t, f.List(ctx))

	lists := NewShoppingListStore(s, ShoppingListsKey, nil)
	assert.Empty(t, lists.Lists(ctx))

	// the store recovers and writes over the malformed value
	require.NoError(t, f.Add(ctx, "c"))
	raw, _, _ := s.Get(ctx, FavoritesKey)
	assert.JSONEq(t, `["c"]`, raw)
}

func TestUnreadableSlotLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	f := NewFavoritesStore(brokenReadSlot{slot.NewMemorySlot()}, FavoritesKey, nil)
	assert.Empty(t, f.List(ctx))
}

func TestWriteFailureKeepsNewValue(t *testing.T) {
	ctx := context.Background()
	f := NewFavoritesStore(failingSlot{slot.NewMemorySlot()}, FavoritesKey, nil)

	err := f.Add(ctx, "a")
	assert.Error(t, err)
	assert.True(t, f.IsFavorite(ctx, "a"))
}

func TestShoppingLists_CreateList(t *testing.T) {
	ctx := context.Background()
	s := NewShoppingListStore(slot.NewMemorySlot(), ShoppingListsKey, nil)

	list, err := s.CreateList(ctx, "Groceries", []string{"r1"}, []string{"eggs", "milk"})
	require.NoError(t, err)

	require.Len(t, list.Items, 2)
	for _, item := range list.Items {
		assert.False(t, item.Checked)
		assert.Equal(t, "1", item.Quantity)
	}
	assert.Equal(t, []string{"r1"}, list.RecipeIds)

	got, ok := s.Get(ctx, list.Id)
	require.True(t, ok)
	assert.Equal(t, list.Items, got.Items)
	assert.Len(t, s.Lists(ctx), 1)

	views := s.Views(ctx)
	assert.Equal(t, Views{Count: 1, Items: 2, Checked: 0}, views)
}

func TestShoppingLists_ToggleTwiceRestores(t *testing.T) {
	ctx := context.Background()
	s := NewShoppingListStore(slot.NewMemorySlot(), ShoppingListsKey, nil)
	list, err := s.CreateList(ctx, "Groceries", nil, []string{"eggs"})
	require.NoError(t, err)
	itemID := list.Items[0].Id

	found, err := s.ToggleItem(ctx, list.Id, itemID)
	require.NoError(t, err)
	assert.True(t, found)
	got, _ := s.Get(ctx, list.Id)
	assert.True(t, got.Items[0].Checked)
	assert.Equal(t, 1, s.Views(ctx).Checked)
	assert.True(t, got.UpdatedAt.After(list.UpdatedAt))

	_, err = s.ToggleItem(ctx, list.Id, itemID)
	require.NoError(t, err)
	got, _ = s.Get(ctx, list.Id)
	assert.False(t, got.Items[0].Checked)
}

func TestShoppingLists_ToggleMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	s := NewShoppingListStore(slot.NewMemorySlot(), ShoppingListsKey, nil)
	list, err := s.CreateList(ctx, "Groceries", nil, []string{"eggs"})
	require.NoError(t, err)

	found, err := s.ToggleItem(ctx, list.Id, "nope")
	require.NoError(t, err)
	assert.False(t, found)

	found, err = s.ToggleItem(ctx, "nope", list.Items[0].Id)
	require.NoError(t, err)
	assert.False(t, found)

	got, _ := s.Get(ctx, list.Id)
	assert.Equal(t, list.Items, got.Items)
}

func TestShoppingLists_DeleteMissingLeavesCollection(t *testing.T) {
	ctx := context.Background()
	s := NewShoppingListStore(slot.NewMemorySlot(), ShoppingListsKey, nil)
	_, err := s.CreateList(ctx, "A", nil, []string{"x"})
	require.NoError(t, err)
	before := s.Lists(ctx)

	require.NoError(t, s.DeleteList(ctx, "does-not-exist"))
	assert.Equal(t, before, s.Lists(ctx))
}

func TestShoppingLists_DeleteList(t *testing.T) {
	ctx := context.Background()
	s := NewShoppingListStore(slot.NewMemorySlot(), ShoppingListsKey, nil)
	a, _ := s.CreateList(ctx, "A", nil, []string{"x"})
	b, _ := s.CreateList(ctx, "B", nil, []string{"y"})

	require.NoError(t, s.DeleteList(ctx, a.Id))
	lists := s.Lists(ctx)
	require.Len(t, lists, 1)
	assert.Equal(t, b.Id, lists[0].Id)
}

func TestShoppingLists_UpdateList(t *testing.T) {
	ctx := context.Background()
	s := NewShoppingListStore(slot.NewMemorySlot(), ShoppingListsKey, nil)
	list, _ := s.CreateList(ctx, "A", nil, []string{"x"})

	items := []entities.ShoppingListItem{
		{Id: "i1", Ingredient: "flour", Quantity: "2 cups"},
		{Id: "i2", Ingredient: "sugar", Quantity: "1 cup", Checked: true},
	}
	found, err := s.UpdateList(ctx, list.Id, items)
	require.NoError(t, err)
	assert.True(t, found)

	got, _ := s.Get(ctx, list.Id)
	assert.Equal(t, items, got.Items)
	assert.False(t, got.UpdatedAt.Before(list.UpdatedAt))

	found, err = s.UpdateList(ctx, "missing", items)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestShoppingLists_RoundTrip(t *testing.T) {
	ctx := context.Background()
	backing := slot.NewMemorySlot()
	s := NewShoppingListStore(backing, ShoppingListsKey, nil)

	list, err := s.CreateList(ctx, "Groceries", []string{"r1", "r2"}, []string{"eggs", "milk", "bread"})
	require.NoError(t, err)
	_, err = s.ToggleItem(ctx, list.Id, list.Items[1].Id)
	require.NoError(t, err)
	want, _ := s.Get(ctx, list.Id)

	reloaded := NewShoppingListStore(backing, ShoppingListsKey, nil)
	got, ok := reloaded.Get(ctx, list.Id)
	require.True(t, ok)

	assert.Equal(t, want.Id, got.Id)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.RecipeIds, got.RecipeIds)
	assert.Equal(t, want.Items, got.Items)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt))
}

func TestShoppingLists_LoadRepairsDuplicateItemIDs(t *testing.T) {
	ctx := context.Background()
	backing := slot.NewMemorySlot()
	raw := `[{"id":"l1","name":"A","items":[{"id":"x","ingredient":"a","quantity":"1","checked":false},{"id":"x","ingredient":"b","quantity":"1","checked":true}],"recipeIds":null,"createdAt":"2024-01-01T00:00:00Z","updatedAt":"2024-01-01T00:00:00Z"},{"name":"no id"}]`
	require.NoError(t, backing.Set(ctx, ShoppingListsKey, raw))

	s := NewShoppingListStore(backing, ShoppingListsKey, nil)
	lists := s.Lists(ctx)
	require.Len(t, lists, 1)
	require.Len(t, lists[0].Items, 2)
	assert.NotEqual(t, lists[0].Items[0].Id, lists[0].Items[1].Id)
	assert.Equal(t, "b", lists[0].Items[1].Ingredient)
	assert.True(t, lists[0].Items[1].Checked)
	assert.NotNil(t, lists[0].RecipeIds)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), lists[0].UpdatedAt.UTC())
}

func TestListenersObserveMutations(t *testing.T) {
	ctx := context.Background()
	var got []Views
	var keys []string
	listener := func(_ context.Context, key string, v Views) {
		keys = append(keys, key)
		got = append(got, v)
	}

	f := NewFavoritesStore(slot.NewMemorySlot(), FavoritesKey, nil, listener)
	require.NoError(t, f.Add(ctx, "a"))
	require.NoError(t, f.Add(ctx, "b"))
	require.NoError(t, f.Remove(ctx, "a"))

	assert.Equal(t, []string{FavoritesKey, FavoritesKey, FavoritesKey}, keys)
	assert.Equal(t, []Views{{Count: 1}, {Count: 2}, {Count: 1}}, got)
}

func TestConcurrentMutationsAreSerialized(t *testing.T) {
	ctx := context.Background()
	s := NewShoppingListStore(slot.NewMemorySlot(), ShoppingListsKey, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.CreateList(ctx, "L", nil, []string{"x"})
		}()
	}
	wg.Wait()

	assert.Len(t, s.Lists(ctx), 50)
	assert.Equal(t, 50, s.Views(ctx).Count)
}

func TestRegistry_Scopes(t *testing.T) {
	ctx := context.Background()
	backing := slot.NewMemorySlot()

	device := NewRegistry(backing, ScopeDevice, nil)
	assert.Same(t, device.Favorites("u1"), device.Favorites("u2"))
	assert.Equal(t, FavoritesKey, device.Favorites("u1").Key())

	perUser := NewRegistry(slot.NewMemorySlot(), ScopeUser, nil)
	u1 := perUser.Favorites("u1")
	u2 := perUser.Favorites("u2")
	assert.NotSame(t, u1, u2)
	assert.Equal(t, FavoritesKey+":u1", u1.Key())
	assert.Equal(t, ShoppingListsKey, perUser.ShoppingLists("").Key())

	require.NoError(t, u1.Add(ctx, "r1"))
	assert.False(t, u2.IsFavorite(ctx, "r1"))

	_, err := ParseScope("planet")
	assert.Error(t, err)
	sc, err := ParseScope("")
	require.NoError(t, err)
	assert.Equal(t, ScopeDevice, sc)
}

func TestPanickingMutationReleasesLock(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(slot.NewMemorySlot(), "panics", func() []string { return []string{} })

	assert.Panics(t, func() {
		_, _ = c.Mutate(ctx, func([]string) []string { panic("boom") })
	})

	done := make(chan []string, 1)
	go func() {
		out, err := c.Mutate(ctx, func(v []string) []string { return append(v, "after") })
		assert.NoError(t, err)
		done <- out
	}()

	select {
	case out := <-done:
		assert.Equal(t, []string{"after"}, out)
	case <-time.After(time.Second):
		t.Fatal("collection still locked after a panicking mutation")
	}
}
