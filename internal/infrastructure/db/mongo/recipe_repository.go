package mongo

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
	"github.com/bos-com/Recipe-management-System/internal/domain/repositories"
)

type nutritionDocument struct {
	Calories float64 `bson:"calories"`
	Protein  float64 `bson:"protein"`
	Carbs    float64 `bson:"carbs"`
	Fat      float64 `bson:"fat"`
}

type recipeDocument struct {
	Id           string            `bson:"_id"`
	Name         string            `bson:"name"`
	Description  string            `bson:"description"`
	Category     string            `bson:"category"`
	CookTime     int               `bson:"cookTime"`
	Servings     int               `bson:"servings"`
	Difficulty   string            `bson:"difficulty,omitempty"`
	Ingredients  []string          `bson:"ingredients"`
	Instructions []string          `bson:"instructions"`
	Tags         []string          `bson:"tags"`
	Image        string            `bson:"image,omitempty"`
	Nutrition    nutritionDocument `bson:"nutrition"`
	Rating       float64           `bson:"rating"`
	Reviews      int               `bson:"reviews"`
	Views        int               `bson:"views"`
	CreatedBy    string            `bson:"createdBy,omitempty"`
	CreatedAt    time.Time         `bson:"createdAt"`
	UpdatedAt    time.Time         `bson:"updatedAt"`
}

type RecipeRepository struct {
	collection *mongo.Collection
}

func NewRecipeRepository(db *mongo.Database) repositories.RecipeRepository {
	return &RecipeRepository{
		collection: db.Collection("recipes"),
	}
}

func (r *RecipeRepository) List(ctx context.Context, filter repositories.RecipeFilter) ([]*entities.Recipe, error) {
	cursor, err := r.collection.Find(ctx, buildFilter(filter), options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []recipeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	recipes := make([]*entities.Recipe, 0, len(docs))
	for i := range docs {
		recipes = append(recipes, toEntity(&docs[i]))
	}
	repositories.SortRecipes(recipes, filter.Sort)
	return recipes, nil
}

func (r *RecipeRepository) FindByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var doc recipeDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return toEntity(&doc), nil
}

func (r *RecipeRepository) Save(ctx context.Context, recipe *entities.ValidatedRecipe) (*entities.Recipe, error) {
	doc := toDocument(recipe.GetRecipe())
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.Id}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, doc.Id)
}

func (r *RecipeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// buildFilter mirrors RecipeFilter.Matches as a server-side query.
func buildFilter(filter repositories.RecipeFilter) bson.M {
	query := bson.M{}
	if filter.HasCategory() {
		query["category"] = strings.TrimSpace(filter.Category)
	}
	if q := strings.TrimSpace(filter.Search); q != "" {
		pattern := bson.M{"$regex": regexp.QuoteMeta(q), "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
			bson.M{"tags": pattern},
			bson.M{"ingredients": pattern},
		}
	}
	return query
}

func toDocument(r *entities.Recipe) recipeDocument {
	return recipeDocument{
		Id:           r.Id,
		Name:         r.Name,
		Description:  r.Description,
		Category:     r.Category,
		CookTime:     r.CookTime,
		Servings:     r.Servings,
		Difficulty:   string(r.Difficulty),
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Tags:         r.Tags,
		Image:        r.Image,
		Nutrition: nutritionDocument{
			Calories: r.Nutrition.Calories,
			Protein:  r.Nutrition.Protein,
			Carbs:    r.Nutrition.Carbs,
			Fat:      r.Nutrition.Fat,
		},
		Rating:    r.Rating,
		Reviews:   r.Reviews,
		Views:     r.Views,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toEntity(d *recipeDocument) *entities.Recipe {
	return entities.NewRecipe(entities.Recipe{
		Id:           d.Id,
		Name:         d.Name,
		Description:  d.Description,
		Category:     d.Category,
		CookTime:     d.CookTime,
		Servings:     d.Servings,
		Difficulty:   entities.Difficulty(d.Difficulty),
		Ingredients:  d.Ingredients,
		Instructions: d.Instructions,
		Tags:         d.Tags,
		Image:        d.Image,
		Nutrition: entities.Nutrition{
			Calories: d.Nutrition.Calories,
			Protein:  d.Nutrition.Protein,
			Carbs:    d.Nutrition.Carbs,
			Fat:      d.Nutrition.Fat,
		},
		Rating:    d.Rating,
		Reviews:   d.Reviews,
		Views:     d.Views,
		CreatedBy: d.CreatedBy,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	})
}
