package recipe_repository

import (
	"context"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VerifyRecipeRepository struct {
	Db *mongo.Database
}

func NewVerifyRecipeRepository(db *mongo.Database) *VerifyRecipeRepository {
	return &VerifyRecipeRepository{
		Db: db,
	}
}

// Verify records a nutritionist's decision on any recipe, not only the
// caller's own. Returns nil when the recipe does not exist.
func (r *VerifyRecipeRepository) Verify(id primitive.ObjectID, verification *models.RecipeVerification) (*models.Recipe, error) {
	collection := r.Db.Collection("recipe")

	update := bson.M{
		"$set": bson.M{
			"verification": verification,
			"updated_at":   verification.VerifiedAt,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts)
	if result.Err() == mongo.ErrNoDocuments {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	var recipe models.Recipe
	if err := result.Decode(&recipe); err != nil {
		return nil, err
	}

	return &recipe, nil
}
