package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/bos-com/Recipe-management-System/internal/application/command"
	"github.com/bos-com/Recipe-management-System/internal/application/interfaces"
	"github.com/bos-com/Recipe-management-System/internal/application/mapper"
	"github.com/bos-com/Recipe-management-System/internal/application/query"
)

const maxImportBytes = 5 << 20

type Handler struct {
	recipes     interfaces.RecipeService
	reviews     interfaces.ReviewService
	collections interfaces.CollectionService
	portability interfaces.PortabilityService
	sessions    interfaces.SessionService
	logger      *slog.Logger
}

func NewHandler(
	recipes interfaces.RecipeService,
	reviews interfaces.ReviewService,
	collections interfaces.CollectionService,
	portability interfaces.PortabilityService,
	sessions interfaces.SessionService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		recipes:     recipes,
		reviews:     reviews,
		collections: collections,
		portability: portability,
		sessions:    sessions,
		logger:      logger,
	}
}

// NewServer wires middleware and routes onto a fresh echo instance.
func NewServer(h *Handler, limiter *rate.Limiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestLogger(h.logger))
	e.Use(RateLimit(limiter))
	e.Use(Identity(h.sessions))
	h.Register(e)
	return e
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	e.POST("/auth/session", h.StartSession)
	e.GET("/auth/me", h.Me)
	e.GET("/permissions", h.Permission)

	e.GET("/recipes", h.ListRecipes)
	e.POST("/recipes", h.CreateRecipe)
	e.GET("/recipes/:id", h.GetRecipe)
	e.PUT("/recipes/:id", h.UpdateRecipe)
	e.DELETE("/recipes/:id", h.DeleteRecipe)
	e.POST("/recipes/:id/views", h.RecordView)
	e.GET("/recipes/:id/reviews", h.ListReviews)
	e.POST("/recipes/:id/reviews", h.SubmitReview)
	e.GET("/recipes/:id/export", h.ExportRecipe)

	e.GET("/collections", h.CuratedCollections)
	e.GET("/dashboard", h.Dashboard)

	e.GET("/favorites", h.Favorites)
	e.GET("/favorites/recipes", h.FavoriteRecipes)
	e.PUT("/favorites/:id", h.AddFavorite)
	e.DELETE("/favorites/:id", h.RemoveFavorite)

	e.GET("/shopping-lists", h.ShoppingLists)
	e.POST("/shopping-lists", h.CreateShoppingList)
	e.GET("/shopping-lists/:id", h.ShoppingList)
	e.PUT("/shopping-lists/:id", h.UpdateShoppingList)
	e.DELETE("/shopping-lists/:id", h.DeleteShoppingList)
	e.POST("/shopping-lists/:id/items/:itemId/toggle", h.ToggleShoppingListItem)
	e.GET("/shopping-lists/:id/export", h.ExportShoppingList)

	e.GET("/export", h.ExportRecipes)
	e.POST("/import", h.ImportRecipes)
	e.GET("/schema/recipes", h.RecipeSchema)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, Response{Status: "ok", Code: http.StatusOK})
}

func (h *Handler) StartSession(c echo.Context) error {
	var cmd command.StartSessionCommand
	if err := c.Bind(&cmd); err != nil {
		return badRequest(c, "Invalid input")
	}
	res, err := h.sessions.StartSession(c.Request().Context(), &cmd)
	if err != nil {
		return writeError(c, h.logger, err, "", "Failed to start session")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, mapper.NewUserResultFromEntity(currentUser(c)))
}

// Permission answers whether the caller may perform an action. Ownership is
// taken from recipeId when given, otherwise from the owner flag.
func (h *Handler) Permission(c echo.Context) error {
	ctx := c.Request().Context()
	user := currentUser(c)

	isOwner := false
	if recipeID := c.QueryParam("recipeId"); recipeID != "" {
		res, err := h.recipes.GetRecipe(ctx, recipeID)
		if err != nil {
			return writeError(c, h.logger, err, "Recipe not found", "Failed to check permission")
		}
		isOwner = !user.IsGuest() && res.Recipe.CreatedBy == user.Id
	} else if raw := c.QueryParam("owner"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return badRequest(c, "owner must be a boolean")
		}
		isOwner = parsed
	}

	res, err := h.recipes.Permission(ctx, user, c.QueryParam("action"), isOwner)
	if err != nil {
		return writeError(c, h.logger, err, "", "Failed to check permission")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ListRecipes(c echo.Context) error {
	res, err := h.recipes.ListRecipes(c.Request().Context(), &query.ListRecipesQuery{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Sort:     c.QueryParam("sort"),
	})
	if err != nil {
		return writeError(c, h.logger, err, "", "Failed to fetch recipes")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) GetRecipe(c echo.Context) error {
	res, err := h.recipes.GetRecipe(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.logger, err, "Recipe not found", "Failed to fetch recipe")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) RecordView(c echo.Context) error {
	res, err := h.recipes.RecordView(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.logger, err, "Recipe not found", "Failed to record view")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) CreateRecipe(c echo.Context) error {
	var input command.RecipeInput
	if err := c.Bind(&input); err != nil {
		return badRequest(c, "Invalid recipe")
	}
	res, err := h.recipes.CreateRecipe(c.Request().Context(), &command.CreateRecipeCommand{Recipe: input}, currentUser(c))
	if err != nil {
		return writeError(c, h.logger, err, "", "Failed to create recipe")
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) UpdateRecipe(c echo.Context) error {
	var input command.RecipeInput
	if err := c.Bind(&input); err != nil {
		return badRequest(c, "Invalid recipe")
	}
	res, err := h.recipes.UpdateRecipe(c.Request().Context(), &command.UpdateRecipeCommand{Id: c.Param("id"), Recipe: input}, currentUser(c))
	if err != nil {
		return writeError(c, h.logger, err, "Recipe not found", "Failed to update recipe")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteRecipe(c echo.Context) error {
	res, err := h.recipes.DeleteRecipe(c.Request().Context(), &command.DeleteRecipeCommand{Id: c.Param("id")}, currentUser(c))
	if err != nil {
		return writeError(c, h.logger, err, "Recipe not found", "Failed to delete recipe")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ListReviews(c echo.Context) error {
	res, err := h.reviews.ListReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.logger, err, "Recipe not found", "Failed to fetch reviews")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) SubmitReview(c echo.Context) error {
	var cmd command.SubmitReviewCommand
	if err := c.Bind(&cmd); err != nil {
		return badRequest(c, "Invalid review")
	}
	cmd.RecipeId = c.Param("id")
	res, err := h.reviews.SubmitReview(c.Request().Context(), &cmd, currentUser(c))
	if err != nil {
		return writeError(c, h.logger, err, "Recipe not found", "Failed to submit review")
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) CuratedCollections(c echo.Context) error {
	res, err := h.recipes.CuratedCollections(c.Request().Context())
	if err != nil {
		return writeError(c, h.logger, err, "", "Failed to fetch collections")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) Dashboard(c echo.Context) error {
	res, err := h.recipes.Dashboard(c.Request().Context(), currentUser(c))
	if err != nil {
		return writeError(c, h.logger, err, "", "Failed to build dashboard")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) Favorites(c echo.Context) error {
	res, err := h.collections.Favorites(c.Request().Context(), currentUser(c))
	if err != nil {
		return writeError(c, h.logger, err, "", "Failed to fetch favorites")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) FavoriteRecipes(c echo.Context) error {
	res, err := h.collections.FavoriteRecipes(c.Request().Context(), currentUser(c))
	if err != nil {
		return writeError(c, h.logger, err, "", "Failed to fetch favorites")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) AddFavorite(c echo.Context) error {
	res, err := h.collections.AddFavorite(c.Request().Context(), currentUser(c), c.Param("id"))
	if err != nil {
		return writeError(c, h.logger, err, "", "Failed to save favorite")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) RemoveFavorite(c echo.Context) error {
	res, err := h.collections.RemoveFavorite(c.Request().Context(), currentUser(c), c.Param("id"))
	if err != nil {
		return writeError(c, h.logger, err, "", "Failed to remove favorite")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ShoppingLists(c echo.Context) error {
	res, err := h.collections.ShoppingLists(c.Request().Context(), currentUser(c))
	if err != nil {
		return writeError(c, h.logger, err, "", "Failed to fetch shopping lists")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ShoppingList(c echo.Context) error {
	res, err := h.collections.ShoppingList(c.Request().Context(), currentUser(c), c.Param("id"))
	if err != nil {
		return writeError(c, h.logger, err, "Shopping list not found", "Failed to fetch shopping list")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) CreateShoppingList(c echo.Context) error {
	var cmd command.CreateShoppingListCommand
	if err := c.Bind(&cmd); err != nil {
		return badRequest(c, "Invalid shopping list")
	}
	res, err := h.collections.CreateShoppingList(c.Request().Context(), currentUser(c), &cmd)
	if err != nil {
		return writeError(c, h.logger, err, "Recipe not found", "Failed to create shopping list")
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) UpdateShoppingList(c echo.Context) error {
	var cmd command.UpdateShoppingListCommand
	if err := c.Bind(&cmd); err != nil {
		return badRequest(c, "Invalid shopping list")
	}
	cmd.Id = c.Param("id")
	res, err := h.collections.UpdateShoppingList(c.Request().Context(), currentUser(c), &cmd)
	if err != nil {
		return writeError(c, h.logger, err, "", "Failed to update shopping list")
	}
	if res.List == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Shopping list not found"})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ToggleShoppingListItem(c echo.Context) error {
	res, err := h.collections.ToggleShoppingListItem(c.Request().Context(), currentUser(c), &command.ToggleItemCommand{
		ListId: c.Param("id"),
		ItemId: c.Param("itemId"),
	})
	if err != nil {
		return writeError(c, h.logger, err, "", "Failed to toggle item")
	}
	if res.List == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Shopping list not found"})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteShoppingList(c echo.Context) error {
	if err := h.collections.DeleteShoppingList(c.Request().Context(), currentUser(c), c.Param("id")); err != nil {
		return writeError(c, h.logger, err, "", "Failed to delete shopping list")
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) ExportShoppingList(c echo.Context) error {
	res, err := h.portability.ExportShoppingList(c.Request().Context(), currentUser(c), c.Param("id"), c.QueryParam("format"))
	if err != nil {
		return writeError(c, h.logger, err, "Shopping list not found", "Failed to export shopping list")
	}
	return download(c, res.Filename, res.ContentType, res.Body)
}

func (h *Handler) ExportRecipe(c echo.Context) error {
	res, err := h.portability.ExportRecipe(c.Request().Context(), c.Param("id"), c.QueryParam("format"))
	if err != nil {
		return writeError(c, h.logger, err, "Recipe not found", "Failed to export recipe")
	}
	return download(c, res.Filename, res.ContentType, res.Body)
}

func (h *Handler) ExportRecipes(c echo.Context) error {
	res, err := h.portability.ExportRecipes(c.Request().Context(), c.QueryParam("format"))
	if err != nil {
		return writeError(c, h.logger, err, "", "Failed to export recipes")
	}
	return download(c, res.Filename, res.ContentType, res.Body)
}

func (h *Handler) ImportRecipes(c echo.Context) error {
	data, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, maxImportBytes))
	if err != nil {
		return badRequest(c, "Failed to read file")
	}
	res, err := h.portability.ImportRecipes(c.Request().Context(), &command.ImportRecipesCommand{Data: data}, currentUser(c))
	if err != nil {
		return writeError(c, h.logger, err, "", "Failed to import recipes")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) RecipeSchema(c echo.Context) error {
	raw, err := h.portability.RecipeSchema(c.Request().Context())
	if err != nil {
		return writeError(c, h.logger, err, "", "Failed to build schema")
	}
	return c.JSONBlob(http.StatusOK, raw)
}
