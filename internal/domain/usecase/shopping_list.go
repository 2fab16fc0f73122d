package usecase

import (
	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateShoppingListRepository interface {
	Create(shoppingList *models.ShoppingList) (*models.ShoppingList, error)
}

type FindShoppingListsByUserIdRepository interface {
	Find(userId primitive.ObjectID) ([]models.ShoppingList, error)
}

type FindShoppingListByIdAndUserIdRepository interface {
	Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.ShoppingList, error)
}

// ReplaceShoppingListRepository rewrites the list name and the whole item
// set in one update. Item ids are not preserved across a replace.
type ReplaceShoppingListRepository interface {
	Replace(id primitive.ObjectID, userId primitive.ObjectID, listName string, items []models.ShoppingListItem) (*models.ShoppingList, error)
}

type DeleteShoppingListRepository interface {
	Delete(id primitive.ObjectID, userId primitive.ObjectID) error
}

// ToggleShoppingListItemRepository flips is_completed on a single embedded
// item, leaving every other field of the list untouched.
type ToggleShoppingListItemRepository interface {
	ToggleItem(listId primitive.ObjectID, userId primitive.ObjectID, itemId primitive.ObjectID, isCompleted bool) (*models.ShoppingListItem, error)
}
