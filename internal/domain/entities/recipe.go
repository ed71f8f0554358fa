package entities

import (
	"time"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type Nutrition struct {
	Calories float64 `json:"calories" yaml:"calories" validate:"gte=0"`
	Protein  float64 `json:"protein" yaml:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbs" yaml:"carbs" validate:"gte=0"`
	Fat      float64 `json:"fat" yaml:"fat" validate:"gte=0"`
}

type Recipe struct {
	Id           string     `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name" validate:"required,max=200"`
	Description  string     `json:"description" yaml:"description"`
	Category     string     `json:"category" yaml:"category"`
	CookTime     int        `json:"cookTime" yaml:"cookTime" validate:"gte=0"`
	Servings     int        `json:"servings" yaml:"servings" validate:"gte=0"`
	Difficulty   Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty" validate:"omitempty,oneof=Easy Medium Hard"`
	Ingredients  []string   `json:"ingredients" yaml:"ingredients" validate:"dive,required"`
	Instructions []string   `json:"instructions" yaml:"instructions" validate:"dive,required"`
	Tags         []string   `json:"tags" yaml:"tags"`
	Image        string     `json:"image,omitempty" yaml:"image,omitempty"`
	Nutrition    Nutrition  `json:"nutrition" yaml:"nutrition"`
	Rating       float64    `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	Reviews      int        `json:"reviews" yaml:"reviews" validate:"gte=0"`
	Views        int        `json:"views" yaml:"views" validate:"gte=0"`
	CreatedBy    string     `json:"createdBy,omitempty" yaml:"createdBy,omitempty"`
	CreatedAt    time.Time  `json:"createdAt" yaml:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt" yaml:"updatedAt"`
}

// NewRecipe assigns an identifier and timestamps to r when they are missing.
func NewRecipe(r Recipe) *Recipe {
	now := time.Now()
	if r.Id == "" {
		r.Id = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() || r.UpdatedAt.Before(r.CreatedAt) {
		r.UpdatedAt = r.CreatedAt
	}
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	if r.Instructions == nil {
		r.Instructions = []string{}
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	return &r
}

// Clone returns a deep copy so callers cannot alias catalog slices.
func (r *Recipe) Clone() *Recipe {
	c := *r
	c.Ingredients = append([]string(nil), r.Ingredients...)
	c.Instructions = append([]string(nil), r.Instructions...)
	c.Tags = append([]string(nil), r.Tags...)
	return &c
}

func (r *Recipe) OwnedBy(u *User) bool {
	return r.CreatedBy != "" && u != nil && !u.IsGuest() && r.CreatedBy == u.Id
}

func (r *Recipe) RecordView() {
	r.Views++
}

// AddRating folds one review rating into the running average.
func (r *Recipe) AddRating(rating int) {
	total := r.Rating*float64(r.Reviews) + float64(rating)
	r.Reviews++
	r.Rating = total / float64(r.Reviews)
	r.UpdatedAt = time.Now()
}
