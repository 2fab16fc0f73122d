package shopping_list_repository

import (
	"context"
	"time"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ToggleShoppingListItemRepository struct {
	Db *mongo.Database
}

func NewToggleShoppingListItemRepository(db *mongo.Database) *ToggleShoppingListItemRepository {
	return &ToggleShoppingListItemRepository{
		Db: db,
	}
}

// ToggleItem updates is_completed on one embedded item through a
// positional update. The filter matches list id, owner and item id in a
// single query, so the toggle never touches quantity, name or unit and
// never reveals lists owned by someone else. Returns nil when nothing
// matched.
func (r *ToggleShoppingListItemRepository) ToggleItem(listId primitive.ObjectID, userId primitive.ObjectID, itemId primitive.ObjectID, isCompleted bool) (*models.ShoppingListItem, error) {
	collection := r.Db.Collection("shopping_list")

	filter := bson.M{
		"_id":       listId,
		"user_id":   userId,
		"items._id": itemId,
	}

	update := bson.M{
		"$set": bson.M{
			"items.$.is_completed": isCompleted,
			"updated_at":           time.Now().UTC(),
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := collection.FindOneAndUpdate(ctx, filter, update, opts)
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

	for i := range shoppingList.Items {
		if shoppingList.Items[i].Id == itemId {
			return &shoppingList.Items[i], nil
		}
	}

	return nil, nil
}
