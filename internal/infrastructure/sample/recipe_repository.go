package sample

import (
	"context"
	"slices"
	"sync"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
	"github.com/bos-com/Recipe-management-System/internal/domain/repositories"
)

// RecipeRepository keeps the catalog in memory. Callers always receive
// copies, so mutating a returned recipe never changes the catalog.
type RecipeRepository struct {
	mu      sync.RWMutex
	recipes []*entities.Recipe
}

func NewRecipeRepository(seed []*entities.Recipe) *RecipeRepository {
	recipes := make([]*entities.Recipe, 0, len(seed))
	for _, r := range seed {
		recipes = append(recipes, r.Clone())
	}
	return &RecipeRepository{recipes: recipes}
}

func (r *RecipeRepository) List(_ context.Context, filter repositories.RecipeFilter) ([]*entities.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Recipe, 0, len(r.recipes))
	for _, recipe := range r.recipes {
		if filter.Matches(recipe) {
			out = append(out, recipe.Clone())
		}
	}
	repositories.SortRecipes(out, filter.Sort)
	return out, nil
}

func (r *RecipeRepository) FindByID(_ context.Context, id string) (*entities.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.recipes[i].Clone(), nil
	}
	return nil, nil
}

func (r *RecipeRepository) Save(_ context.Context, recipe *entities.ValidatedRecipe) (*entities.Recipe, error) {
	stored := recipe.GetRecipe().Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(stored.Id); i >= 0 {
		r.recipes[i] = stored
	} else {
		r.recipes = append(r.recipes, stored)
	}
	return stored.Clone(), nil
}

func (r *RecipeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repositories.ErrNotFound
	}
	r.recipes = slices.Delete(r.recipes, i, i+1)
	return nil
}

func (r *RecipeRepository) indexOf(id string) int {
	return slices.IndexFunc(r.recipes, func(recipe *entities.Recipe) bool { return recipe.Id == id })
}
