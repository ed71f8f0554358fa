package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
	"github.com/bos-com/Recipe-management-System/internal/domain/repositories"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) repositories.ReviewRepository {
	return &ReviewRepository{db: db}
}

// ListByRecipe returns reviews newest first.
func (r *ReviewRepository) ListByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeReview, error) {
	var models []ReviewModel
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	reviews := make([]*entities.RecipeReview, 0, len(models))
	for i := range models {
		m := &models[i]
		reviews = append(reviews, &entities.RecipeReview{
			Id:        m.Id,
			RecipeId:  m.RecipeId,
			UserId:    m.UserId,
			UserName:  m.UserName,
			Rating:    m.Rating,
			Comment:   m.Comment,
			CreatedAt: m.CreatedAt,
		})
	}
	return reviews, nil
}

func (r *ReviewRepository) Append(ctx context.Context, review *entities.RecipeReview) error {
	model := ReviewModel{
		Id:        review.Id,
		RecipeId:  review.RecipeId,
		UserId:    review.UserId,
		UserName:  review.UserName,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&model).Error
}
