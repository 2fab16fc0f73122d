package shopping_list_repository

import (
	"context"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindShoppingListsByUserIdRepository struct {
	Db *mongo.Database
}

func NewFindShoppingListsByUserIdRepository(db *mongo.Database) *FindShoppingListsByUserIdRepository {
	return &FindShoppingListsByUserIdRepository{
		Db: db,
	}
}

func (r *FindShoppingListsByUserIdRepository) Find(userId primitive.ObjectID) ([]models.ShoppingList, error) {
	collection := r.Db.Collection("shopping_list")

	filter := bson.M{"user_id": userId}
	opts := options.Find().SetSort(bson.M{"created_at": -1})

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var shoppingLists []models.ShoppingList
	if err = cursor.All(ctx, &shoppingLists); err != nil {
		return nil, err
	}

	return shoppingLists, nil
}
