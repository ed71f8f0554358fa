package query

import (
	"github.com/bos-com/Recipe-management-System/internal/application/common"
)

type FavoritesQueryResult struct {
	Favorites []string `json:"favorites"`
	Count     int      `json:"count"`
}

type ShoppingListQueryResult struct {
	List *common.ShoppingListResult `json:"list"`
}

type ShoppingListQueryListResult struct {
	Lists []*common.ShoppingListResult `json:"lists"`
	Count int                          `json:"count"`
}

type PermissionQueryResult struct {
	Action  string `json:"action"`
	Role    string `json:"role"`
	IsOwner bool   `json:"isOwner"`
	Allowed bool   `json:"allowed"`
}
