package services

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/bos-com/Recipe-management-System/internal/application/command"
	"github.com/bos-com/Recipe-management-System/internal/application/common"
	"github.com/bos-com/Recipe-management-System/internal/application/interfaces"
	"github.com/bos-com/Recipe-management-System/internal/application/mapper"
	"github.com/bos-com/Recipe-management-System/internal/application/query"
	"github.com/bos-com/Recipe-management-System/internal/domain/access"
	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
	"github.com/bos-com/Recipe-management-System/internal/domain/repositories"
)

const (
	quickCookTime    = 30
	lightCalorieCap  = 300
	popularLimit     = 5
	topRatingCutoff  = 4.8
	goodRatingCutoff = 4.0
)

type RecipeService struct {
	recipeRepo repositories.RecipeRepository
	checker    *access.Checker
	logger     *slog.Logger
}

func NewRecipeService(
	recipeRepo repositories.RecipeRepository,
	checker *access.Checker,
	logger *slog.Logger,
) interfaces.RecipeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecipeService{
		recipeRepo: recipeRepo,
		checker:    checker,
		logger:     logger,
	}
}

func (s *RecipeService) ListRecipes(ctx context.Context, listQuery *query.ListRecipesQuery) (*query.RecipeQueryListResult, error) {
	recipes, err := s.recipeRepo.List(ctx, repositories.RecipeFilter{
		Category: listQuery.Category,
		Search:   listQuery.Search,
		Sort:     repositories.ParseRecipeSort(listQuery.Sort),
	})
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	return &query.RecipeQueryListResult{
		Recipes: mapper.NewRecipeResultsFromEntities(recipes),
		Total:   len(recipes),
	}, nil
}

func (s *RecipeService) GetRecipe(ctx context.Context, id string) (*query.RecipeQueryResult, error) {
	recipe, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &query.RecipeQueryResult{Recipe: mapper.NewRecipeResultFromEntity(recipe)}, nil
}

// RecordView bumps the view counter that drives the "popular" ordering.
func (s *RecipeService) RecordView(ctx context.Context, id string) (*query.RecipeQueryResult, error) {
	recipe, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	recipe.RecordView()

	saved, err := s.save(ctx, recipe)
	if err != nil {
		return nil, err
	}
	return &query.RecipeQueryResult{Recipe: mapper.NewRecipeResultFromEntity(saved)}, nil
}

func (s *RecipeService) CreateRecipe(ctx context.Context, createCommand *command.CreateRecipeCommand, user *entities.User) (*command.CreateRecipeCommandResult, error) {
	if !s.checker.Allowed(ctx, user, access.ActionManage, false) {
		return nil, ErrUnauthorized
	}

	recipe := entities.NewRecipe(entities.Recipe{CreatedBy: user.Id})
	mapper.ApplyRecipeInput(recipe, createCommand.Recipe)

	saved, err := s.save(ctx, recipe)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "recipes: created", "recipe", saved.Id, "user", user.Id)
	return &command.CreateRecipeCommandResult{
		Success: true,
		Recipe:  mapper.NewRecipeResultFromEntity(saved),
	}, nil
}

func (s *RecipeService) UpdateRecipe(ctx context.Context, updateCommand *command.UpdateRecipeCommand, user *entities.User) (*command.UpdateRecipeCommandResult, error) {
	recipe, err := s.find(ctx, updateCommand.Id)
	if err != nil {
		return nil, err
	}
	if !s.checker.Allowed(ctx, user, access.ActionEdit, recipe.OwnedBy(user)) {
		return nil, ErrUnauthorized
	}

	mapper.ApplyRecipeInput(recipe, updateCommand.Recipe)
	recipe.UpdatedAt = time.Now()

	saved, err := s.save(ctx, recipe)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "recipes: updated", "recipe", saved.Id, "user", user.Id)
	return &command.UpdateRecipeCommandResult{
		Success: true,
		Recipe:  mapper.NewRecipeResultFromEntity(saved),
	}, nil
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, deleteCommand *command.DeleteRecipeCommand, user *entities.User) (*command.DeleteRecipeCommandResult, error) {
	recipe, err := s.find(ctx, deleteCommand.Id)
	if err != nil {
		return nil, err
	}
	if !s.checker.Allowed(ctx, user, access.ActionDelete, recipe.OwnedBy(user)) {
		return nil, ErrUnauthorized
	}

	if err := s.recipeRepo.Delete(ctx, recipe.Id); err != nil {
		return nil, fmt.Errorf("delete recipe %s: %w", recipe.Id, err)
	}

	s.logger.InfoContext(ctx, "recipes: deleted", "recipe", recipe.Id, "user", user.Id)
	return &command.DeleteRecipeCommandResult{Success: true}, nil
}

func (s *RecipeService) Dashboard(ctx context.Context, user *entities.User) (*query.DashboardQueryResult, error) {
	if !s.checker.Allowed(ctx, user, access.ActionDashboard, false) {
		return nil, ErrUnauthorized
	}

	recipes, err := s.recipeRepo.List(ctx, repositories.RecipeFilter{})
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	return &query.DashboardQueryResult{Result: dashboardStats(recipes)}, nil
}

func (s *RecipeService) CuratedCollections(ctx context.Context) (*query.CuratedCollectionsQueryResult, error) {
	recipes, err := s.recipeRepo.List(ctx, repositories.RecipeFilter{})
	if err != nil {
		return nil, fmt.Errorf("curated collections: %w", err)
	}

	quick := &common.CuratedCollectionResult{
		Id:          "c1",
		Name:        "Quick Weeknight Dinners",
		Description: "Easy recipes ready in under 30 minutes",
		RecipeIds:   []string{},
		CreatedBy:   "admin",
	}
	healthy := &common.CuratedCollectionResult{
		Id:          "c2",
		Name:        "Healthy Eating",
		Description: "Low-calorie and nutritious options",
		RecipeIds:   []string{},
		CreatedBy:   "admin",
	}
	for _, r := range recipes {
		if r.CookTime <= quickCookTime {
			quick.RecipeIds = append(quick.RecipeIds, r.Id)
		}
		if r.Nutrition.Calories < lightCalorieCap {
			healthy.RecipeIds = append(healthy.RecipeIds, r.Id)
		}
	}

	return &query.CuratedCollectionsQueryResult{
		Collections: []*common.CuratedCollectionResult{quick, healthy},
	}, nil
}

func (s *RecipeService) Permission(ctx context.Context, user *entities.User, action string, isOwner bool) (*query.PermissionQueryResult, error) {
	parsed, err := access.ParseAction(action)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	role := entities.RoleUnknown
	if user != nil {
		role = user.Role
	}
	return &query.PermissionQueryResult{
		Action:  string(parsed),
		Role:    role.String(),
		IsOwner: isOwner,
		Allowed: s.checker.Allowed(ctx, user, parsed, isOwner),
	}, nil
}

func (s *RecipeService) find(ctx context.Context, id string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find recipe %s: %w", id, err)
	}
	if recipe == nil {
		return nil, fmt.Errorf("recipe %s: %w", id, ErrNotFound)
	}
	return recipe, nil
}

func (s *RecipeService) save(ctx context.Context, recipe *entities.Recipe) (*entities.Recipe, error) {
	validated, err := entities.NewValidatedRecipe(recipe)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	saved, err := s.recipeRepo.Save(ctx, validated)
	if err != nil {
		return nil, fmt.Errorf("save recipe %s: %w", recipe.Id, err)
	}
	return saved, nil
}

func dashboardStats(recipes []*entities.Recipe) *common.DashboardResult {
	result := &common.DashboardResult{
		TotalRecipes:   len(recipes),
		TopCategory:    "N/A",
		Categories:     []common.CategoryCount{},
		PopularRecipes: []common.PopularRecipe{},
		RatingDistribution: []common.CategoryCount{
			{Name: "5 Star"},
			{Name: "4-4.8 Star"},
			{Name: "Below 4"},
		},
	}
	if len(recipes) == 0 {
		return result
	}

	var ratingSum float64
	var cookSum int
	index := map[string]int{}
	for _, r := range recipes {
		ratingSum += r.Rating
		cookSum += r.CookTime
		result.TotalViews += r.Views

		if i, ok := index[r.Category]; ok {
			result.Categories[i].Value++
		} else {
			index[r.Category] = len(result.Categories)
			result.Categories = append(result.Categories, common.CategoryCount{Name: r.Category, Value: 1})
		}

		switch {
		case r.Rating >= topRatingCutoff:
			result.RatingDistribution[0].Value++
		case r.Rating >= goodRatingCutoff:
			result.RatingDistribution[1].Value++
		default:
			result.RatingDistribution[2].Value++
		}
	}

	n := float64(len(recipes))
	result.AverageRating = math.Round(ratingSum/n*10) / 10
	result.AverageCookTime = int(math.Round(float64(cookSum) / n))

	top := result.Categories[0]
	for _, c := range result.Categories[1:] {
		if c.Value > top.Value {
			top = c
		}
	}
	result.TopCategory = top.Name

	byViews := slices.Clone(recipes)
	slices.SortStableFunc(byViews, func(a, b *entities.Recipe) int { return cmp.Compare(b.Views, a.Views) })
	for _, r := range byViews[:min(popularLimit, len(byViews))] {
		result.PopularRecipes = append(result.PopularRecipes, common.PopularRecipe{Id: r.Id, Name: r.Name, Views: r.Views})
	}
	return result
}
