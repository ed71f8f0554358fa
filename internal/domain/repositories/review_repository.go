package repositories

import (
	"context"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
)

// ReviewRepository provides recipe reviews. Reviews are append-only.
type ReviewRepository interface {
	ListByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeReview, error)
	Append(ctx context.Context, review *entities.RecipeReview) error
}
