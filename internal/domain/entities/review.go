package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidReview = errors.New("invalid review")

type RecipeReview struct {
	Id        string    `json:"id"`
	RecipeId  string    `json:"recipeId" validate:"required"`
	UserId    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating" validate:"min=1,max=5"`
	Comment   string    `json:"comment" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewRecipeReview trims the comment and rejects ratings outside 1-5 or a
// blank comment.
func NewRecipeReview(recipeID string, author *User, rating int, comment string) (*RecipeReview, error) {
	review := &RecipeReview{
		Id:        uuid.NewString(),
		RecipeId:  recipeID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: time.Now(),
	}
	if author != nil {
		review.UserId = author.Id
		review.UserName = author.Name
	}
	if err := validateStruct(review); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReview, err)
	}
	return review, nil
}
