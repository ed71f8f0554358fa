package repositories

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
)

var ErrNotFound = errors.New("not found")

type RecipeSort string

const (
	SortNewest  RecipeSort = "newest"
	SortPopular RecipeSort = "popular"
	SortRating  RecipeSort = "rating"
	SortName    RecipeSort = "name"
)

// AllCategories is the catalog's sentinel for "no category filter".
const AllCategories = "All Categories"

type RecipeFilter struct {
	Category string
	Search   string
	Sort     RecipeSort
}

// RecipeRepository is the upstream recipe source. FindByID returns nil, nil
// when the recipe does not exist.
type RecipeRepository interface {
	List(ctx context.Context, filter RecipeFilter) ([]*entities.Recipe, error)
	FindByID(ctx context.Context, id string) (*entities.Recipe, error)
	Save(ctx context.Context, recipe *entities.ValidatedRecipe) (*entities.Recipe, error)
	Delete(ctx context.Context, id string) error
}

func (f RecipeFilter) HasCategory() bool {
	c := strings.TrimSpace(f.Category)
	return c != "" && !strings.EqualFold(c, "all") && c != AllCategories
}

// Matches applies the category and search parts of the filter. Search is
// case-insensitive over name, description, tags and ingredients.
func (f RecipeFilter) Matches(r *entities.Recipe) bool {
	if f.HasCategory() && r.Category != strings.TrimSpace(f.Category) {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Name), q) || strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return false
}

// SortRecipes orders recipes in place; ties keep their source order.
func SortRecipes(recipes []*entities.Recipe, sort RecipeSort) {
	switch sort {
	case SortPopular:
		slices.SortStableFunc(recipes, func(a, b *entities.Recipe) int { return b.Views - a.Views })
	case SortRating:
		slices.SortStableFunc(recipes, func(a, b *entities.Recipe) int {
			switch {
			case a.Rating > b.Rating:
				return -1
			case a.Rating < b.Rating:
				return 1
			}
			return 0
		})
	case SortName:
		slices.SortStableFunc(recipes, func(a, b *entities.Recipe) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	default:
		slices.SortStableFunc(recipes, func(a, b *entities.Recipe) int { return b.CreatedAt.Compare(a.CreatedAt) })
	}
}

func ParseRecipeSort(s string) RecipeSort {
	switch RecipeSort(strings.ToLower(strings.TrimSpace(s))) {
	case SortPopular:
		return SortPopular
	case SortRating:
		return SortRating
	case SortName:
		return SortName
	default:
		return SortNewest
	}
}
