package shopping_list_repository

import (
	"context"

	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteShoppingListRepository struct {
	Db *mongo.Database
}

func NewDeleteShoppingListRepository(db *mongo.Database) *DeleteShoppingListRepository {
	return &DeleteShoppingListRepository{
		Db: db,
	}
}

func (r *DeleteShoppingListRepository) Delete(id primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("shopping_list")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userId})
	if err != nil {
		return err
	}

	return nil
}
