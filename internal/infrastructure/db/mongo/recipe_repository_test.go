package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
	"github.com/bos-com/Recipe-management-System/internal/domain/repositories"
)

func TestBuildFilter(t *testing.T) {
	assert.Empty(t, buildFilter(repositories.RecipeFilter{Category: repositories.AllCategories}))

	f := buildFilter(repositories.RecipeFilter{Category: " Dinner ", Search: "mac (and) cheese"})
	assert.Equal(t, "Dinner", f["category"])

	or, ok := f["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 4)
	name := or[0].(bson.M)["name"].(bson.M)
	assert.Equal(t, `mac \(and\) cheese`, name["$regex"])
	assert.Equal(t, "i", name["$options"])
}

func TestDocumentMapping(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	recipe := entities.NewRecipe(entities.Recipe{
		Id:          "r1",
		Name:        "Pho",
		Category:    "Dinner",
		Difficulty:  entities.DifficultyHard,
		Ingredients: []string{"rice noodles"},
		Nutrition:   entities.Nutrition{Calories: 450},
		Rating:      4.5,
		CreatedAt:   created,
	})

	raw, err := bson.Marshal(toDocument(recipe))
	require.NoError(t, err)

	var decoded recipeDocument
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	got := toEntity(&decoded)

	assert.Equal(t, "r1", got.Id)
	assert.Equal(t, "Pho", got.Name)
	assert.Equal(t, entities.DifficultyHard, got.Difficulty)
	assert.Equal(t, []string{"rice noodles"}, got.Ingredients)
	assert.Equal(t, []string{}, got.Tags)
	assert.InDelta(t, 450, got.Nutrition.Calories, 0.001)
	assert.True(t, created.Equal(got.CreatedAt))
}
