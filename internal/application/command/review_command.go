package command

import (
	"github.com/bos-com/Recipe-management-System/internal/application/common"
)

type SubmitReviewCommand struct {
	RecipeId string `json:"recipeId"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

type SubmitReviewCommandResult struct {
	Review        *common.ReviewResult `json:"review"`
	RecipeRating  float64              `json:"recipeRating"`
	RecipeReviews int                  `json:"recipeReviews"`
}
