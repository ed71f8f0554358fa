package interfaces

import (
	"context"

	"github.com/bos-com/Recipe-management-System/internal/application/command"
	"github.com/bos-com/Recipe-management-System/internal/application/query"
	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
)

type RecipeService interface {
	ListRecipes(ctx context.Context, listQuery *query.ListRecipesQuery) (*query.RecipeQueryListResult, error)
	GetRecipe(ctx context.Context, id string) (*query.RecipeQueryResult, error)
	RecordView(ctx context.Context, id string) (*query.RecipeQueryResult, error)
	CreateRecipe(ctx context.Context, createCommand *command.CreateRecipeCommand, user *entities.User) (*command.CreateRecipeCommandResult, error)
	UpdateRecipe(ctx context.Context, updateCommand *command.UpdateRecipeCommand, user *entities.User) (*command.UpdateRecipeCommandResult, error)
	DeleteRecipe(ctx context.Context, deleteCommand *command.DeleteRecipeCommand, user *entities.User) (*command.DeleteRecipeCommandResult, error)
	Dashboard(ctx context.Context, user *entities.User) (*query.DashboardQueryResult, error)
	CuratedCollections(ctx context.Context) (*query.CuratedCollectionsQueryResult, error)
	Permission(ctx context.Context, user *entities.User, action string, isOwner bool) (*query.PermissionQueryResult, error)
}

type ReviewService interface {
	ListReviews(ctx context.Context, recipeID string) (*query.ReviewQueryListResult, error)
	SubmitReview(ctx context.Context, submitCommand *command.SubmitReviewCommand, user *entities.User) (*command.SubmitReviewCommandResult, error)
}

type CollectionService interface {
	Favorites(ctx context.Context, user *entities.User) (*query.FavoritesQueryResult, error)
	FavoriteRecipes(ctx context.Context, user *entities.User) (*query.RecipeQueryListResult, error)
	AddFavorite(ctx context.Context, user *entities.User, recipeID string) (*command.FavoriteCommandResult, error)
	RemoveFavorite(ctx context.Context, user *entities.User, recipeID string) (*command.FavoriteCommandResult, error)
	ShoppingLists(ctx context.Context, user *entities.User) (*query.ShoppingListQueryListResult, error)
	ShoppingList(ctx context.Context, user *entities.User, listID string) (*query.ShoppingListQueryResult, error)
	CreateShoppingList(ctx context.Context, user *entities.User, createCommand *command.CreateShoppingListCommand) (*command.ShoppingListCommandResult, error)
	UpdateShoppingList(ctx context.Context, user *entities.User, updateCommand *command.UpdateShoppingListCommand) (*command.ShoppingListCommandResult, error)
	ToggleShoppingListItem(ctx context.Context, user *entities.User, toggleCommand *command.ToggleItemCommand) (*command.ShoppingListCommandResult, error)
	DeleteShoppingList(ctx context.Context, user *entities.User, listID string) error
}

type PortabilityService interface {
	ExportRecipe(ctx context.Context, id, format string) (*command.ExportResult, error)
	ExportRecipes(ctx context.Context, format string) (*command.ExportResult, error)
	ExportShoppingList(ctx context.Context, user *entities.User, listID, format string) (*command.ExportResult, error)
	ImportRecipes(ctx context.Context, importCommand *command.ImportRecipesCommand, user *entities.User) (*command.ImportRecipesCommandResult, error)
	RecipeSchema(ctx context.Context) ([]byte, error)
}

type SessionService interface {
	StartSession(ctx context.Context, sessionCommand *command.StartSessionCommand) (*command.StartSessionCommandResult, error)
	Identify(ctx context.Context, bearer string) *entities.User
}
