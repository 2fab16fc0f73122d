package usecase

import (
	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateRecipeRepository interface {
	Create(recipe *models.Recipe) (*models.Recipe, error)

	CreateMany(recipes []*models.Recipe) ([]*models.Recipe, error)
}

type FindRecipesByUserIdRepository interface {
	Find(userId primitive.ObjectID) ([]models.Recipe, error)
}

type FindVerifiedRecipesRepository interface {
	FindVerified() ([]models.Recipe, error)
}

type FindRecipeByIdRepository interface {
	Find(id primitive.ObjectID) (*models.Recipe, error)
}

type FindRecipeByIdAndUserIdRepository interface {
	Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.Recipe, error)
}

type FindRecipesByIdsRepository interface {
	FindByIds(ids []primitive.ObjectID) ([]models.Recipe, error)
}

type UpdateRecipeRepository interface {
	Update(id primitive.ObjectID, recipe *models.Recipe) (*models.Recipe, error)
}

type DeleteRecipeRepository interface {
	Delete(id primitive.ObjectID, userId primitive.ObjectID) error
}

type VerifyRecipeRepository interface {
	Verify(id primitive.ObjectID, verification *models.RecipeVerification) (*models.Recipe, error)
}
