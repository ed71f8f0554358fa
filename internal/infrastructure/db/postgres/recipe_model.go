package postgres

import (
	"time"
)

type NutritionModel struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// RecipeModel stores list columns as JSON text so the schema is identical on
// postgres and sqlite.
type RecipeModel struct {
	Id           string    `gorm:"primaryKey;size:64"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
	Name         string         `gorm:"not null"`
	Description  string         `gorm:"type:text"`
	Category     string         `gorm:"index"`
	CookTime     int
	Servings     int
	Difficulty   string
	Ingredients  []string       `gorm:"serializer:json;type:text"`
	Instructions []string       `gorm:"serializer:json;type:text"`
	Tags         []string       `gorm:"serializer:json;type:text"`
	Image        string
	Nutrition    NutritionModel `gorm:"embedded;embeddedPrefix:nutrition_"`
	Rating       float64
	Reviews      int
	Views        int
	CreatedBy    string `gorm:"index"`
}

func (RecipeModel) TableName() string {
	return "recipes"
}

type ReviewModel struct {
	Id        string `gorm:"primaryKey;size:64"`
	RecipeId  string `gorm:"index;not null"`
	UserId    string
	UserName  string
	Rating    int
	Comment   string `gorm:"type:text"`
	CreatedAt time.Time
}

func (ReviewModel) TableName() string {
	return "reviews"
}
