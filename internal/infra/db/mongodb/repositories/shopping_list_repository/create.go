package shopping_list_repository

import (
	"context"
	"time"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateShoppingListRepository struct {
	Db *mongo.Database
}

func NewCreateShoppingListRepository(db *mongo.Database) *CreateShoppingListRepository {
	return &CreateShoppingListRepository{
		Db: db,
	}
}

// Create inserts the list with its embedded items as one document, which
// makes the generation write atomic.
func (r *CreateShoppingListRepository) Create(shoppingList *models.ShoppingList) (*models.ShoppingList, error) {
	collection := r.Db.Collection("shopping_list")

	shoppingList.Id = primitive.NewObjectID()
	shoppingList.CreatedAt = time.Now().UTC()
	shoppingList.UpdatedAt = time.Now().UTC()

	if shoppingList.Items == nil {
		shoppingList.Items = []models.ShoppingListItem{}
	}

	for i := range shoppingList.Items {
		if shoppingList.Items[i].Id.IsZero() {
			shoppingList.Items[i].Id = primitive.NewObjectID()
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()
	_, err := collection.InsertOne(ctx, shoppingList)
	if err != nil {
		return nil, err
	}

	return shoppingList, nil
}
