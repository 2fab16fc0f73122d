package shopping_list_repository

import (
	"context"
	"time"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReplaceShoppingListRepository struct {
	Db *mongo.Database
}

func NewReplaceShoppingListRepository(db *mongo.Database) *ReplaceShoppingListRepository {
	return &ReplaceShoppingListRepository{
		Db: db,
	}
}

// Replace drops the entire item set and writes the supplied one in its
// place. Every item gets a fresh id and sort_order equal to its array
// position; concurrent replaces are last write wins.
func (r *ReplaceShoppingListRepository) Replace(id primitive.ObjectID, userId primitive.ObjectID, listName string, items []models.ShoppingListItem) (*models.ShoppingList, error) {
	collection := r.Db.Collection("shopping_list")

	if items == nil {
		items = []models.ShoppingListItem{}
	}

	now := time.Now().UTC()
	for i := range items {
		items[i].Id = primitive.NewObjectID()
		items[i].SortOrder = i
	}

	update := bson.M{
		"$set": bson.M{
			"list_name":  listName,
			"items":      items,
			"updated_at": now,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "user_id": userId}, update)
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

	shoppingList.ListName = listName
	shoppingList.Items = items
	shoppingList.UpdatedAt = now

	return &shoppingList, nil
}
