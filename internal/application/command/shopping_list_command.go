package command

import (
	"github.com/bos-com/Recipe-management-System/internal/application/common"
)

// CreateShoppingListCommand builds a list either from explicit ingredient
// lines or, when Ingredients is empty, from the ingredients of RecipeIds.
type CreateShoppingListCommand struct {
	Name        string   `json:"name"`
	RecipeIds   []string `json:"recipeIds"`
	Ingredients []string `json:"ingredients"`
}

type UpdateShoppingListCommand struct {
	Id    string                          `json:"id"`
	Items []common.ShoppingListItemResult `json:"items"`
}

type ShoppingListCommandResult struct {
	Found bool                       `json:"found"`
	List  *common.ShoppingListResult `json:"list,omitempty"`
}

type ToggleItemCommand struct {
	ListId string `json:"listId"`
	ItemId string `json:"itemId"`
}

type FavoriteCommandResult struct {
	RecipeId   string `json:"recipeId"`
	IsFavorite bool   `json:"isFavorite"`
	Count      int    `json:"count"`
}
