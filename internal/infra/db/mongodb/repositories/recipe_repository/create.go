package recipe_repository

import (
	"context"
	"time"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateRecipeRepository struct {
	Db *mongo.Database
}

func NewCreateRecipeRepository(db *mongo.Database) *CreateRecipeRepository {
	return &CreateRecipeRepository{
		Db: db,
	}
}

func (r *CreateRecipeRepository) Create(recipe *models.Recipe) (*models.Recipe, error) {
	collection := r.Db.Collection("recipe")

	recipe.Id = primitive.NewObjectID()
	recipe.CreatedAt = time.Now().UTC()
	recipe.UpdatedAt = time.Now().UTC()

	if recipe.Ingredients == nil {
		recipe.Ingredients = []models.RecipeIngredient{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()
	_, err := collection.InsertOne(ctx, recipe)
	if err != nil {
		return nil, err
	}

	return recipe, nil
}

func (r *CreateRecipeRepository) CreateMany(recipes []*models.Recipe) ([]*models.Recipe, error) {
	collection := r.Db.Collection("recipe")

	if len(recipes) == 0 {
		return recipes, nil
	}

	docs := make([]any, len(recipes))
	now := time.Now().UTC()

	for i, recipe := range recipes {
		if recipe.Id.IsZero() {
			recipe.Id = primitive.NewObjectID()
		}
		recipe.CreatedAt = now
		recipe.UpdatedAt = now
		if recipe.Ingredients == nil {
			recipe.Ingredients = []models.RecipeIngredient{}
		}
		docs[i] = recipe
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}

	return recipes, nil
}
