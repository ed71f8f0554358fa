package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bos-com/Recipe-management-System/internal/application/command"
	"github.com/bos-com/Recipe-management-System/internal/application/interfaces"
	"github.com/bos-com/Recipe-management-System/internal/application/mapper"
	"github.com/bos-com/Recipe-management-System/internal/application/query"
	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
	"github.com/bos-com/Recipe-management-System/internal/domain/repositories"
	"github.com/bos-com/Recipe-management-System/internal/store"
)

type CollectionService struct {
	registry   *store.Registry
	recipeRepo repositories.RecipeRepository
	logger     *slog.Logger
	now        func() time.Time
}

func NewCollectionService(
	registry *store.Registry,
	recipeRepo repositories.RecipeRepository,
	logger *slog.Logger,
) interfaces.CollectionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CollectionService{
		registry:   registry,
		recipeRepo: recipeRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *CollectionService) Favorites(ctx context.Context, user *entities.User) (*query.FavoritesQueryResult, error) {
	favorites := s.registry.Favorites(userKey(user))
	ids := favorites.List(ctx)
	return &query.FavoritesQueryResult{Favorites: ids, Count: len(ids)}, nil
}

// FavoriteRecipes joins the favorite ids against the catalog in favorite
// order. Ids with no matching recipe are skipped.
func (s *CollectionService) FavoriteRecipes(ctx context.Context, user *entities.User) (*query.RecipeQueryListResult, error) {
	ids := s.registry.Favorites(userKey(user)).List(ctx)

	recipes := make([]*entities.Recipe, 0, len(ids))
	for _, id := range ids {
		recipe, err := s.recipeRepo.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("favorite recipe %s: %w", id, err)
		}
		if recipe != nil {
			recipes = append(recipes, recipe)
		}
	}
	return &query.RecipeQueryListResult{
		Recipes: mapper.NewRecipeResultsFromEntities(recipes),
		Total:   len(recipes),
	}, nil
}

func (s *CollectionService) AddFavorite(ctx context.Context, user *entities.User, recipeID string) (*command.FavoriteCommandResult, error) {
	if strings.TrimSpace(recipeID) == "" {
		return nil, fmt.Errorf("%w: recipe id is required", ErrInvalidInput)
	}
	favorites := s.registry.Favorites(userKey(user))
	if err := favorites.Add(ctx, recipeID); err != nil {
		return nil, fmt.Errorf("add favorite %s: %w", recipeID, err)
	}
	return &command.FavoriteCommandResult{RecipeId: recipeID, IsFavorite: true, Count: favorites.Count(ctx)}, nil
}

func (s *CollectionService) RemoveFavorite(ctx context.Context, user *entities.User, recipeID string) (*command.FavoriteCommandResult, error) {
	favorites := s.registry.Favorites(userKey(user))
	if err := favorites.Remove(ctx, recipeID); err != nil {
		return nil, fmt.Errorf("remove favorite %s: %w", recipeID, err)
	}
	return &command.FavoriteCommandResult{RecipeId: recipeID, IsFavorite: false, Count: favorites.Count(ctx)}, nil
}

func (s *CollectionService) ShoppingLists(ctx context.Context, user *entities.User) (*query.ShoppingListQueryListResult, error) {
	lists := s.registry.ShoppingLists(userKey(user)).Lists(ctx)
	return &query.ShoppingListQueryListResult{
		Lists: mapper.NewShoppingListResultsFromEntities(lists),
		Count: len(lists),
	}, nil
}

func (s *CollectionService) ShoppingList(ctx context.Context, user *entities.User, listID string) (*query.ShoppingListQueryResult, error) {
	list, ok := s.registry.ShoppingLists(userKey(user)).Get(ctx, listID)
	if !ok {
		return nil, fmt.Errorf("shopping list %s: %w", listID, ErrNotFound)
	}
	return &query.ShoppingListQueryResult{List: mapper.NewShoppingListResultFromEntity(list)}, nil
}

// CreateShoppingList uses the explicit ingredients when given; otherwise it
// concatenates the ingredients of each recipe in the order listed.
func (s *CollectionService) CreateShoppingList(ctx context.Context, user *entities.User, createCommand *command.CreateShoppingListCommand) (*command.ShoppingListCommandResult, error) {
	ingredients := createCommand.Ingredients
	if len(ingredients) == 0 {
		for _, id := range createCommand.RecipeIds {
			recipe, err := s.recipeRepo.FindByID(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("shopping list recipe %s: %w", id, err)
			}
			if recipe == nil {
				return nil, fmt.Errorf("recipe %s: %w", id, ErrNotFound)
			}
			ingredients = append(ingredients, recipe.Ingredients...)
		}
	}

	name := strings.TrimSpace(createCommand.Name)
	if name == "" {
		name = "Shopping List - " + s.now().Format(time.DateOnly)
	}

	list, err := s.registry.ShoppingLists(userKey(user)).CreateList(ctx, name, createCommand.RecipeIds, ingredients)
	if err != nil {
		return nil, fmt.Errorf("create shopping list: %w", err)
	}
	return &command.ShoppingListCommandResult{Found: true, List: mapper.NewShoppingListResultFromEntity(list)}, nil
}

func (s *CollectionService) UpdateShoppingList(ctx context.Context, user *entities.User, updateCommand *command.UpdateShoppingListCommand) (*command.ShoppingListCommandResult, error) {
	lists := s.registry.ShoppingLists(userKey(user))
	items := mapper.NewShoppingListItemsFromResults(updateCommand.Items)

	found, err := lists.UpdateList(ctx, updateCommand.Id, items)
	if err != nil {
		return nil, fmt.Errorf("update shopping list %s: %w", updateCommand.Id, err)
	}
	return s.listResult(ctx, lists, updateCommand.Id, found), nil
}

func (s *CollectionService) ToggleShoppingListItem(ctx context.Context, user *entities.User, toggleCommand *command.ToggleItemCommand) (*command.ShoppingListCommandResult, error) {
	lists := s.registry.ShoppingLists(userKey(user))

	found, err := lists.ToggleItem(ctx, toggleCommand.ListId, toggleCommand.ItemId)
	if err != nil {
		return nil, fmt.Errorf("toggle item %s/%s: %w", toggleCommand.ListId, toggleCommand.ItemId, err)
	}
	return s.listResult(ctx, lists, toggleCommand.ListId, found), nil
}

func (s *CollectionService) DeleteShoppingList(ctx context.Context, user *entities.User, listID string) error {
	if err := s.registry.ShoppingLists(userKey(user)).DeleteList(ctx, listID); err != nil {
		return fmt.Errorf("delete shopping list %s: %w", listID, err)
	}
	return nil
}

// listResult reports the current state of listID. Missing lists and items
// are silent no-ops, so found only says whether anything changed.
func (s *CollectionService) listResult(ctx context.Context, lists *store.ShoppingListStore, listID string, found bool) *command.ShoppingListCommandResult {
	result := &command.ShoppingListCommandResult{Found: found}
	if list, ok := lists.Get(ctx, listID); ok {
		result.List = mapper.NewShoppingListResultFromEntity(list)
	}
	return result
}

// userKey is the collection owner; guests share the device collections.
func userKey(user *entities.User) string {
	if user.IsGuest() {
		return ""
	}
	return user.Id
}
