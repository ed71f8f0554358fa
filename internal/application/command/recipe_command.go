package command

import (
	"github.com/bos-com/Recipe-management-System/internal/application/common"
)

// RecipeInput is the writable part of a recipe.
type RecipeInput struct {
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Category     string                 `json:"category"`
	CookTime     int                    `json:"cookTime"`
	Servings     int                    `json:"servings"`
	Difficulty   string                 `json:"difficulty,omitempty"`
	Ingredients  []string               `json:"ingredients"`
	Instructions []string               `json:"instructions"`
	Tags         []string               `json:"tags"`
	Image        string                 `json:"image,omitempty"`
	Nutrition    common.NutritionResult `json:"nutrition"`
}

type CreateRecipeCommand struct {
	Recipe RecipeInput `json:"recipe"`
}

type CreateRecipeCommandResult struct {
	Success bool                 `json:"success"`
	Recipe  *common.RecipeResult `json:"recipe"`
}

type UpdateRecipeCommand struct {
	Id     string      `json:"id"`
	Recipe RecipeInput `json:"recipe"`
}

type UpdateRecipeCommandResult struct {
	Success bool                 `json:"success"`
	Recipe  *common.RecipeResult `json:"recipe"`
}

type DeleteRecipeCommand struct {
	Id string `json:"id"`
}

type DeleteRecipeCommandResult struct {
	Success bool `json:"success"`
}
