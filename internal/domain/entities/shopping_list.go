package entities

import (
	"time"

	"github.com/google/uuid"
)

// DefaultQuantity is the quantity given to items generated from recipe
// ingredient text.
const DefaultQuantity = "1"

type ShoppingListItem struct {
	Id         string `json:"id"`
	Ingredient string `json:"ingredient"`
	Quantity   string `json:"quantity"`
	Checked    bool   `json:"checked"`
}

type ShoppingList struct {
	Id        string             `json:"id"`
	Name      string             `json:"name"`
	Items     []ShoppingListItem `json:"items"`
	RecipeIds []string           `json:"recipeIds"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func NewShoppingListItem(ingredient string) ShoppingListItem {
	return ShoppingListItem{
		Id:         uuid.NewString(),
		Ingredient: ingredient,
		Quantity:   DefaultQuantity,
		Checked:    false,
	}
}

// NewShoppingList creates one unchecked item per ingredient text, in order.
func NewShoppingList(name string, recipeIDs, ingredients []string) ShoppingList {
	now := time.Now()
	items := make([]ShoppingListItem, 0, len(ingredients))
	for _, ingredient := range ingredients {
		items = append(items, NewShoppingListItem(ingredient))
	}
	return ShoppingList{
		Id:        uuid.NewString(),
		Name:      name,
		Items:     items,
		RecipeIds: append([]string{}, recipeIDs...),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (l *ShoppingList) CheckedCount() int {
	n := 0
	for _, item := range l.Items {
		if item.Checked {
			n++
		}
	}
	return n
}

// ToggleItem flips the checked flag of itemID and reports whether the item
// exists.
func (l *ShoppingList) ToggleItem(itemID string) bool {
	for i := range l.Items {
		if l.Items[i].Id == itemID {
			l.Items[i].Checked = !l.Items[i].Checked
			l.touch()
			return true
		}
	}
	return false
}

// ReplaceItems swaps the item sequence wholesale. Items with an empty or
// repeated identifier get a fresh one so identifiers stay unique.
func (l *ShoppingList) ReplaceItems(items []ShoppingListItem) {
	seen := make(map[string]struct{}, len(items))
	replaced := make([]ShoppingListItem, 0, len(items))
	for _, item := range items {
		if _, dup := seen[item.Id]; item.Id == "" || dup {
			item.Id = uuid.NewString()
		}
		seen[item.Id] = struct{}{}
		replaced = append(replaced, item)
	}
	l.Items = replaced
	l.touch()
}

// Clone returns a deep copy of the list.
func (l ShoppingList) Clone() ShoppingList {
	l.Items = append([]ShoppingListItem{}, l.Items...)
	l.RecipeIds = append([]string{}, l.RecipeIds...)
	return l
}

func (l *ShoppingList) touch() {
	now := time.Now()
	if !now.After(l.UpdatedAt) {
		now = l.UpdatedAt.Add(time.Nanosecond)
	}
	l.UpdatedAt = now
}
