package recipe_repository

import (
	"context"
	"time"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateRecipeRepository struct {
	Db *mongo.Database
}

func NewUpdateRecipeRepository(db *mongo.Database) *UpdateRecipeRepository {
	return &UpdateRecipeRepository{
		Db: db,
	}
}

// Update rewrites the recipe's editable fields and clears any existing
// verification, since the nutritional review no longer applies to the
// changed content.
func (r *UpdateRecipeRepository) Update(id primitive.ObjectID, recipe *models.Recipe) (*models.Recipe, error) {
	collection := r.Db.Collection("recipe")

	recipe.UpdatedAt = time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"title":        recipe.Title,
			"description":  recipe.Description,
			"instructions": recipe.Instructions,
			"prep_minutes": recipe.PrepMinutes,
			"cook_minutes": recipe.CookMinutes,
			"servings":     recipe.Servings,
			"ingredients":  recipe.Ingredients,
			"verification": nil,
			"updated_at":   recipe.UpdatedAt,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, bson.M{"_id": id, "user_id": recipe.UserId}, update)
	if err != nil {
		return nil, err
	}

	recipe.Id = id
	recipe.Verification = nil

	return recipe, nil
}
