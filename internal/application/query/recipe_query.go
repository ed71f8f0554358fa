package query

import (
	"github.com/bos-com/Recipe-management-System/internal/application/common"
)

type ListRecipesQuery struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	Sort     string `query:"sort"`
}

type RecipeQueryResult struct {
	Recipe *common.RecipeResult `json:"recipe"`
}

type RecipeQueryListResult struct {
	Recipes []*common.RecipeResult `json:"recipes"`
	Total   int                    `json:"total"`
}

type ReviewQueryListResult struct {
	Reviews []*common.ReviewResult `json:"reviews"`
	Total   int                    `json:"total"`
}

type DashboardQueryResult struct {
	Result *common.DashboardResult `json:"result"`
}

type CuratedCollectionsQueryResult struct {
	Collections []*common.CuratedCollectionResult `json:"collections"`
}
