package recipe_repository

import (
	"context"

	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteRecipeRepository struct {
	Db *mongo.Database
}

func NewDeleteRecipeRepository(db *mongo.Database) *DeleteRecipeRepository {
	return &DeleteRecipeRepository{
		Db: db,
	}
}

func (r *DeleteRecipeRepository) Delete(id primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("recipe")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userId})
	if err != nil {
		return err
	}

	return nil
}
