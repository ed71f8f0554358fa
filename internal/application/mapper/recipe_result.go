package mapper

import (
	"github.com/bos-com/Recipe-management-System/internal/application/command"
	"github.com/bos-com/Recipe-management-System/internal/application/common"
	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
)

func NewRecipeResultFromEntity(recipe *entities.Recipe) *common.RecipeResult {
	return &common.RecipeResult{
		Id:           recipe.Id,
		Name:         recipe.Name,
		Description:  recipe.Description,
		Category:     recipe.Category,
		CookTime:     recipe.CookTime,
		Servings:     recipe.Servings,
		Difficulty:   string(recipe.Difficulty),
		Ingredients:  nonNil(recipe.Ingredients),
		Instructions: nonNil(recipe.Instructions),
		Tags:         nonNil(recipe.Tags),
		Image:        recipe.Image,
		Nutrition: common.NutritionResult{
			Calories: recipe.Nutrition.Calories,
			Protein:  recipe.Nutrition.Protein,
			Carbs:    recipe.Nutrition.Carbs,
			Fat:      recipe.Nutrition.Fat,
		},
		Rating:    recipe.Rating,
		Reviews:   recipe.Reviews,
		Views:     recipe.Views,
		CreatedBy: recipe.CreatedBy,
		CreatedAt: recipe.CreatedAt,
		UpdatedAt: recipe.UpdatedAt,
	}
}

func NewRecipeResultsFromEntities(recipes []*entities.Recipe) []*common.RecipeResult {
	out := make([]*common.RecipeResult, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, NewRecipeResultFromEntity(r))
	}
	return out
}

// ApplyRecipeInput copies the writable fields of in onto recipe.
func ApplyRecipeInput(recipe *entities.Recipe, in command.RecipeInput) {
	recipe.Name = in.Name
	recipe.Description = in.Description
	recipe.Category = in.Category
	recipe.CookTime = in.CookTime
	recipe.Servings = in.Servings
	recipe.Difficulty = entities.Difficulty(in.Difficulty)
	recipe.Ingredients = nonNil(in.Ingredients)
	recipe.Instructions = nonNil(in.Instructions)
	recipe.Tags = nonNil(in.Tags)
	recipe.Image = in.Image
	recipe.Nutrition = entities.Nutrition{
		Calories: in.Nutrition.Calories,
		Protein:  in.Nutrition.Protein,
		Carbs:    in.Nutrition.Carbs,
		Fat:      in.Nutrition.Fat,
	}
}

func NewReviewResultFromEntity(review *entities.RecipeReview) *common.ReviewResult {
	return &common.ReviewResult{
		Id:        review.Id,
		RecipeId:  review.RecipeId,
		UserId:    review.UserId,
		UserName:  review.UserName,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string{}, s...)
}
