package mapper

import (
	"github.com/bos-com/Recipe-management-System/internal/application/common"
	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
)

func NewShoppingListResultFromEntity(list entities.ShoppingList) *common.ShoppingListResult {
	items := make([]common.ShoppingListItemResult, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, common.ShoppingListItemResult{
			Id:         item.Id,
			Ingredient: item.Ingredient,
			Quantity:   item.Quantity,
			Checked:    item.Checked,
		})
	}
	return &common.ShoppingListResult{
		Id:           list.Id,
		Name:         list.Name,
		Items:        items,
		RecipeIds:    nonNil(list.RecipeIds),
		TotalItems:   len(list.Items),
		CheckedItems: list.CheckedCount(),
		CreatedAt:    list.CreatedAt,
		UpdatedAt:    list.UpdatedAt,
	}
}

func NewShoppingListResultsFromEntities(lists []entities.ShoppingList) []*common.ShoppingListResult {
	out := make([]*common.ShoppingListResult, 0, len(lists))
	for _, l := range lists {
		out = append(out, NewShoppingListResultFromEntity(l))
	}
	return out
}

func NewShoppingListItemsFromResults(items []common.ShoppingListItemResult) []entities.ShoppingListItem {
	out := make([]entities.ShoppingListItem, 0, len(items))
	for _, item := range items {
		quantity := item.Quantity
		if quantity == "" {
			quantity = entities.DefaultQuantity
		}
		out = append(out, entities.ShoppingListItem{
			Id:         item.Id,
			Ingredient: item.Ingredient,
			Quantity:   quantity,
			Checked:    item.Checked,
		})
	}
	return out
}
