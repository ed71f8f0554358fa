package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bos-com/Recipe-management-System/internal/application/command"
	"github.com/bos-com/Recipe-management-System/internal/application/common"
	"github.com/bos-com/Recipe-management-System/internal/application/interfaces"
	"github.com/bos-com/Recipe-management-System/internal/application/mapper"
	"github.com/bos-com/Recipe-management-System/internal/domain/access"
	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
	"github.com/bos-com/Recipe-management-System/internal/domain/repositories"
	"github.com/bos-com/Recipe-management-System/internal/infrastructure/export"
	"github.com/bos-com/Recipe-management-System/internal/store"
)

type PortabilityService struct {
	recipeRepo repositories.RecipeRepository
	registry   *store.Registry
	checker    *access.Checker
	logger     *slog.Logger
	now        func() time.Time
}

func NewPortabilityService(
	recipeRepo repositories.RecipeRepository,
	registry *store.Registry,
	checker *access.Checker,
	logger *slog.Logger,
) interfaces.PortabilityService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PortabilityService{
		recipeRepo: recipeRepo,
		registry:   registry,
		checker:    checker,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *PortabilityService) ExportRecipe(ctx context.Context, id, format string) (*command.ExportResult, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find recipe %s: %w", id, err)
	}
	if recipe == nil {
		return nil, fmt.Errorf("recipe %s: %w", id, ErrNotFound)
	}

	now := s.now()
	var buf bytes.Buffer
	if err := export.WriteRecipe(&buf, recipe, f, now); err != nil {
		return nil, err
	}
	return &command.ExportResult{
		Filename:    export.Filename(recipe, f, now),
		ContentType: f.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

func (s *PortabilityService) ExportRecipes(ctx context.Context, format string) (*command.ExportResult, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	recipes, err := s.recipeRepo.List(ctx, repositories.RecipeFilter{})
	if err != nil {
		return nil, fmt.Errorf("export recipes: %w", err)
	}

	now := s.now()
	var buf bytes.Buffer
	if err := export.WriteRecipes(&buf, recipes, f, now); err != nil {
		return nil, err
	}
	return &command.ExportResult{
		Filename:    export.Filename(nil, f, now),
		ContentType: f.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

func (s *PortabilityService) ExportShoppingList(ctx context.Context, user *entities.User, listID, format string) (*command.ExportResult, error) {
	f, err := export.ParseFormat(format)
	if err != nil || f == export.FormatYAML {
		return nil, fmt.Errorf("%w: unsupported shopping list format %q", ErrInvalidInput, format)
	}

	list, ok := s.registry.ShoppingLists(userKey(user)).Get(ctx, listID)
	if !ok {
		return nil, fmt.Errorf("shopping list %s: %w", listID, ErrNotFound)
	}

	var buf bytes.Buffer
	if err := export.WriteShoppingList(&buf, list, f); err != nil {
		return nil, err
	}
	return &command.ExportResult{
		Filename:    export.ShoppingListFilename(list, f),
		ContentType: f.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

// ImportRecipes saves every valid recipe in the document and reports the
// rest by position. Only admins may import.
func (s *PortabilityService) ImportRecipes(ctx context.Context, importCommand *command.ImportRecipesCommand, user *entities.User) (*command.ImportRecipesCommandResult, error) {
	if !s.checker.Allowed(ctx, user, access.ActionManage, false) {
		return nil, ErrUnauthorized
	}

	parsed, err := export.ParseRecipes(importCommand.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	result := &command.ImportRecipesCommandResult{Recipes: []*common.RecipeResult{}}
	for i, raw := range parsed {
		if raw.CreatedBy == "" {
			raw.CreatedBy = user.Id
		}
		validated, err := entities.NewValidatedRecipe(entities.NewRecipe(*raw))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("recipe %d: %v", i, err))
			continue
		}
		saved, err := s.recipeRepo.Save(ctx, validated)
		if err != nil {
			return nil, fmt.Errorf("import recipe %d: %w", i, err)
		}
		result.Recipes = append(result.Recipes, mapper.NewRecipeResultFromEntity(saved))
	}
	result.Imported = len(result.Recipes)

	s.logger.InfoContext(ctx, "portability: imported recipes",
		"user", user.Id,
		"imported", result.Imported,
		"rejected", len(result.Errors))
	return result, nil
}

func (s *PortabilityService) RecipeSchema(_ context.Context) ([]byte, error) {
	return export.RecipeSchema()
}
