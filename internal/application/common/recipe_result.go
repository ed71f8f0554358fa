package common

import (
	"time"
)

type NutritionResult struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type RecipeResult struct {
	Id           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	CookTime     int             `json:"cookTime"`
	Servings     int             `json:"servings"`
	Difficulty   string          `json:"difficulty,omitempty"`
	Ingredients  []string        `json:"ingredients"`
	Instructions []string        `json:"instructions"`
	Tags         []string        `json:"tags"`
	Image        string          `json:"image,omitempty"`
	Nutrition    NutritionResult `json:"nutrition"`
	Rating       float64         `json:"rating"`
	Reviews      int             `json:"reviews"`
	Views        int             `json:"views"`
	CreatedBy    string          `json:"createdBy,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type ReviewResult struct {
	Id        string    `json:"id"`
	RecipeId  string    `json:"recipeId"`
	UserId    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
