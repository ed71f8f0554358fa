package sample

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
)

type stagedReview struct {
	userID   string
	userName string
	rating   int
	comment  string
	age      time.Duration
}

var staged = []stagedReview{
	{"u1", "Sarah Johnson", 5, "Amazing recipe! Very easy to follow and turned out delicious.", 24 * time.Hour},
	{"u2", "Mike Chen", 4, "Great flavors but took longer than expected.", 48 * time.Hour},
	{"u3", "Emma Wilson", 5, "Perfect! Will make this again.", 72 * time.Hour},
}

// ReviewRepository is an append-only in-memory review log. With staging
// enabled, a recipe without submitted reviews shows three placeholder
// reviews until its first real one arrives.
type ReviewRepository struct {
	mu      sync.RWMutex
	reviews map[string][]*entities.RecipeReview
	staging bool
	now     func() time.Time
}

func NewReviewRepository(staging bool) *ReviewRepository {
	return &ReviewRepository{
		reviews: make(map[string][]*entities.RecipeReview),
		staging: staging,
		now:     time.Now,
	}
}

// ListByRecipe returns reviews newest first.
func (r *ReviewRepository) ListByRecipe(_ context.Context, recipeID string) ([]*entities.RecipeReview, error) {
	r.mu.RLock()
	stored := r.reviews[recipeID]
	out := make([]*entities.RecipeReview, 0, len(stored))
	for _, review := range stored {
		c := *review
		out = append(out, &c)
	}
	r.mu.RUnlock()

	if len(out) == 0 && r.staging {
		return r.stagedFor(recipeID), nil
	}
	slices.SortStableFunc(out, func(a, b *entities.RecipeReview) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (r *ReviewRepository) Append(_ context.Context, review *entities.RecipeReview) error {
	c := *review
	r.mu.Lock()
	r.reviews[review.RecipeId] = append(r.reviews[review.RecipeId], &c)
	r.mu.Unlock()
	return nil
}

func (r *ReviewRepository) stagedFor(recipeID string) []*entities.RecipeReview {
	now := r.now()
	out := make([]*entities.RecipeReview, 0, len(staged))
	for i, s := range staged {
		out = append(out, &entities.RecipeReview{
			Id:        "r" + strconv.Itoa(i+1),
			RecipeId:  recipeID,
			UserId:    s.userID,
			UserName:  s.userName,
			Rating:    s.rating,
			Comment:   s.comment,
			CreatedAt: now.Add(-s.age),
		})
	}
	return out
}
