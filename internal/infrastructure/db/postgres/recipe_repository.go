package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
	"github.com/bos-com/Recipe-management-System/internal/domain/repositories"
)

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) repositories.RecipeRepository {
	return &RecipeRepository{db: db}
}

// List narrows by category in SQL; search runs over the decoded rows because
// tags and ingredients are stored as JSON text.
func (r *RecipeRepository) List(ctx context.Context, filter repositories.RecipeFilter) ([]*entities.Recipe, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.HasCategory() {
		query = query.Where("category = ?", strings.TrimSpace(filter.Category))
	}

	var models []RecipeModel
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	recipes := make([]*entities.Recipe, 0, len(models))
	for i := range models {
		recipe := r.mapToEntity(&models[i])
		if filter.Matches(recipe) {
			recipes = append(recipes, recipe)
		}
	}
	repositories.SortRecipes(recipes, filter.Sort)
	return recipes, nil
}

func (r *RecipeRepository) FindByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var model RecipeModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&model), nil
}

// Save inserts or replaces the recipe and reads it back.
func (r *RecipeRepository) Save(ctx context.Context, recipe *entities.ValidatedRecipe) (*entities.Recipe, error) {
	model := r.mapToModel(recipe.GetRecipe())
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, model.Id)
}

func (r *RecipeRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&RecipeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *RecipeRepository) mapToModel(recipe *entities.Recipe) RecipeModel {
	return RecipeModel{
		Id:           recipe.Id,
		CreatedAt:    recipe.CreatedAt,
		UpdatedAt:    recipe.UpdatedAt,
		Name:         recipe.Name,
		Description:  recipe.Description,
		Category:     recipe.Category,
		CookTime:     recipe.CookTime,
		Servings:     recipe.Servings,
		Difficulty:   string(recipe.Difficulty),
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		Tags:         recipe.Tags,
		Image:        recipe.Image,
		Nutrition: NutritionModel{
			Calories: recipe.Nutrition.Calories,
			Protein:  recipe.Nutrition.Protein,
			Carbs:    recipe.Nutrition.Carbs,
			Fat:      recipe.Nutrition.Fat,
		},
		Rating:    recipe.Rating,
		Reviews:   recipe.Reviews,
		Views:     recipe.Views,
		CreatedBy: recipe.CreatedBy,
	}
}

func (r *RecipeRepository) mapToEntity(model *RecipeModel) *entities.Recipe {
	return entities.NewRecipe(entities.Recipe{
		Id:           model.Id,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
		Name:         model.Name,
		Description:  model.Description,
		Category:     model.Category,
		CookTime:     model.CookTime,
		Servings:     model.Servings,
		Difficulty:   entities.Difficulty(model.Difficulty),
		Ingredients:  model.Ingredients,
		Instructions: model.Instructions,
		Tags:         model.Tags,
		Image:        model.Image,
		Nutrition: entities.Nutrition{
			Calories: model.Nutrition.Calories,
			Protein:  model.Nutrition.Protein,
			Carbs:    model.Nutrition.Carbs,
			Fat:      model.Nutrition.Fat,
		},
		Rating:    model.Rating,
		Reviews:   model.Reviews,
		Views:     model.Views,
		CreatedBy: model.CreatedBy,
	})
}
