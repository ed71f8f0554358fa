package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bos-com/Recipe-management-System/internal/application/command"
	"github.com/bos-com/Recipe-management-System/internal/application/common"
	"github.com/bos-com/Recipe-management-System/internal/application/interfaces"
	"github.com/bos-com/Recipe-management-System/internal/application/mapper"
	"github.com/bos-com/Recipe-management-System/internal/application/query"
	"github.com/bos-com/Recipe-management-System/internal/domain/access"
	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
	"github.com/bos-com/Recipe-management-System/internal/domain/repositories"
	"github.com/bos-com/Recipe-management-System/internal/infrastructure"
)

type ReviewService struct {
	recipeRepo  repositories.RecipeRepository
	reviewRepo  repositories.ReviewRepository
	checker     *access.Checker
	rateLimiter *infrastructure.RateLimiter
	logger      *slog.Logger
}

func NewReviewService(
	recipeRepo repositories.RecipeRepository,
	reviewRepo repositories.ReviewRepository,
	checker *access.Checker,
	rateLimiter *infrastructure.RateLimiter,
	logger *slog.Logger,
) interfaces.ReviewService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewService{
		recipeRepo:  recipeRepo,
		reviewRepo:  reviewRepo,
		checker:     checker,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

func (s *ReviewService) ListReviews(ctx context.Context, recipeID string) (*query.ReviewQueryListResult, error) {
	if _, err := s.findRecipe(ctx, recipeID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("list reviews for %s: %w", recipeID, err)
	}

	result := &query.ReviewQueryListResult{
		Reviews: make([]*common.ReviewResult, 0, len(reviews)),
		Total:   len(reviews),
	}
	for _, r := range reviews {
		result.Reviews = append(result.Reviews, mapper.NewReviewResultFromEntity(r))
	}
	return result, nil
}

// SubmitReview folds the rating into the recipe's average, saves the recipe
// and then appends the review. If the append fails the previous recipe is
// restored so neither write is left behind on its own.
func (s *ReviewService) SubmitReview(ctx context.Context, submitCommand *command.SubmitReviewCommand, user *entities.User) (*command.SubmitReviewCommandResult, error) {
	if !s.checker.Allowed(ctx, user, access.ActionCreate, false) {
		return nil, ErrUnauthorized
	}
	if s.rateLimiter != nil && !s.rateLimiter.Allow(user.Id) {
		s.logger.WarnContext(ctx, "reviews: rate limited", "user", user.Id)
		return nil, ErrRateLimited
	}

	review, err := entities.NewRecipeReview(submitCommand.RecipeId, user, submitCommand.Rating, submitCommand.Comment)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	recipe, err := s.findRecipe(ctx, submitCommand.RecipeId)
	if err != nil {
		return nil, err
	}
	previous, err := entities.NewValidatedRecipe(recipe.Clone())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	recipe.AddRating(review.Rating)
	validated, err := entities.NewValidatedRecipe(recipe)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	saved, err := s.recipeRepo.Save(ctx, validated)
	if err != nil {
		return nil, fmt.Errorf("save recipe rating %s: %w", recipe.Id, err)
	}

	if err := s.reviewRepo.Append(ctx, review); err != nil {
		if _, restoreErr := s.recipeRepo.Save(ctx, previous); restoreErr != nil {
			s.logger.ErrorContext(ctx, "reviews: restore recipe rating", "recipe", recipe.Id, "error", restoreErr)
		}
		return nil, fmt.Errorf("append review: %w", err)
	}

	s.logger.InfoContext(ctx, "reviews: submitted", "recipe", saved.Id, "user", user.Id, "rating", review.Rating)
	return &command.SubmitReviewCommandResult{
		Review:        mapper.NewReviewResultFromEntity(review),
		RecipeRating:  saved.Rating,
		RecipeReviews: saved.Reviews,
	}, nil
}

func (s *ReviewService) findRecipe(ctx context.Context, id string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find recipe %s: %w", id, err)
	}
	if recipe == nil {
		return nil, fmt.Errorf("recipe %s: %w", id, ErrNotFound)
	}
	return recipe, nil
}
