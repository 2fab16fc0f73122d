package shopping_list_repository

import (
	"context"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindShoppingListByIdAndUserIdRepository struct {
	Db *mongo.Database
}

func NewFindShoppingListByIdAndUserIdRepository(db *mongo.Database) *FindShoppingListByIdAndUserIdRepository {
	return &FindShoppingListByIdAndUserIdRepository{
		Db: db,
	}
}

// Find combines id and ownership in one filter so a list belonging to
// another user is indistinguishable from a missing one.
func (r *FindShoppingListByIdAndUserIdRepository) Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.ShoppingList, error) {
	collection := r.Db.Collection("shopping_list")

	filter := bson.M{"_id": id, "user_id": userId}
	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := collection.FindOne(ctx, filter)
	if result.Err() == mongo.ErrNoDocuments {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	var shoppingList models.ShoppingList
	if err := result.Decode(&shoppingList); err != nil {
		return nil, err
	}

	return &shoppingList, nil
}
