package sample

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
	"github.com/bos-com/Recipe-management-System/internal/domain/repositories"
)

func TestRecipes_Valid(t *testing.T) {
	recipes := Recipes()
	require.NotEmpty(t, recipes)

	seen := map[string]bool{}
	for _, r := range recipes {
		_, err := entities.NewValidatedRecipe(r)
		assert.NoError(t, err, r.Name)
		assert.False(t, seen[r.Id], "duplicate id %s", r.Id)
		seen[r.Id] = true
	}
}

func TestRecipeRepository_ListDefaultOrder(t *testing.T) {
	repo := NewRecipeRepository(Recipes())

	all, err := repo.List(context.Background(), repositories.RecipeFilter{})
	require.NoError(t, err)
	require.Len(t, all, len(Recipes()))
	assert.Equal(t, "1", all[0].Id)

	quick, err := repo.List(context.Background(), repositories.RecipeFilter{Search: "QUICK"})
	require.NoError(t, err)
	for _, r := range quick {
		assert.Contains(t, r.Tags, "quick")
	}
}

func TestRecipeRepository_CopiesOnRead(t *testing.T) {
	ctx := context.Background()
	repo := NewRecipeRepository(Recipes())

	got, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	got.Name = "mutated"
	got.Ingredients[0] = "mutated"

	again, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Classic Margherita Pizza", again.Name)
	assert.NotEqual(t, "mutated", again.Ingredients[0])

	missing, err := repo.FindByID(ctx, "404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRecipeRepository_SaveDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewRecipeRepository(nil)

	validated, err := entities.NewValidatedRecipe(entities.NewRecipe(entities.Recipe{Name: "Porridge"}))
	require.NoError(t, err)
	saved, err := repo.Save(ctx, validated)
	require.NoError(t, err)

	saved.Views = 3
	validated, err = entities.NewValidatedRecipe(saved)
	require.NoError(t, err)
	_, err = repo.Save(ctx, validated)
	require.NoError(t, err)

	all, err := repo.List(ctx, repositories.RecipeFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 3, all[0].Views)

	require.NoError(t, repo.Delete(ctx, saved.Id))
	assert.ErrorIs(t, repo.Delete(ctx, saved.Id), repositories.ErrNotFound)
}

func TestReviewRepository_Staged(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := NewReviewRepository(true)
	repo.now = func() time.Time { return now }

	reviews, err := repo.ListByRecipe(ctx, "1")
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, "Sarah Johnson", reviews[0].UserName)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "Mike Chen", reviews[1].UserName)
	assert.Equal(t, "Emma Wilson", reviews[2].UserName)
	assert.True(t, now.Add(-24*time.Hour).Equal(reviews[0].CreatedAt))
	assert.Equal(t, "1", reviews[2].RecipeId)

	author := entities.NewUser("a@example.com", "Ana", entities.RoleUser)
	review, err := entities.NewRecipeReview("1", author, 3, "ok")
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, review))

	reviews, err = repo.ListByRecipe(ctx, "1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Ana", reviews[0].UserName)
}

func TestReviewRepository_Unstaged(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(false)

	reviews, err := repo.ListByRecipe(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, reviews)

	author := entities.NewUser("a@example.com", "Ana", entities.RoleUser)
	older, err := entities.NewRecipeReview("1", author, 2, "first")
	require.NoError(t, err)
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer, err := entities.NewRecipeReview("1", author, 4, "second")
	require.NoError(t, err)
	require.NoError(t, repo.Append(ctx, older))
	require.NoError(t, repo.Append(ctx, newer))

	reviews, err = repo.ListByRecipe(ctx, "1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "second", reviews[0].Comment)
}
