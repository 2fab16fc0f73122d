package usecase

import (
	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateCollectionRepository interface {
	Create(collection *models.Collection) (*models.Collection, error)
}

type FindCollectionsByUserIdRepository interface {
	Find(userId primitive.ObjectID) ([]models.Collection, error)
}

type FindCollectionByIdAndUserIdRepository interface {
	Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.Collection, error)
}

type DeleteCollectionRepository interface {
	Delete(id primitive.ObjectID, userId primitive.ObjectID) error
}

type AddRecipeToCollectionRepository interface {
	AddRecipe(id primitive.ObjectID, userId primitive.ObjectID, recipeId primitive.ObjectID) (*models.Collection, error)
}

type RemoveRecipeFromCollectionRepository interface {
	RemoveRecipe(id primitive.ObjectID, userId primitive.ObjectID, recipeId primitive.ObjectID) (*models.Collection, error)
}
