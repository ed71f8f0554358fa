package common

import (
	"time"
)

type ShoppingListItemResult struct {
	Id         string `json:"id"`
	Ingredient string `json:"ingredient"`
	Quantity   string `json:"quantity"`
	Checked    bool   `json:"checked"`
}

type ShoppingListResult struct {
	Id           string                   `json:"id"`
	Name         string                   `json:"name"`
	Items        []ShoppingListItemResult `json:"items"`
	RecipeIds    []string                 `json:"recipeIds"`
	TotalItems   int                      `json:"totalItems"`
	CheckedItems int                      `json:"checkedItems"`
	CreatedAt    time.Time                `json:"createdAt"`
	UpdatedAt    time.Time                `json:"updatedAt"`
}

// CuratedCollectionResult is a named, computed grouping of recipe ids.
type CuratedCollectionResult struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	RecipeIds   []string `json:"recipes"`
	CreatedBy   string   `json:"createdBy"`
}
