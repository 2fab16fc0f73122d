package usecase

import (
	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateMealPlanRepository interface {
	Create(mealPlan *models.MealPlan) (*models.MealPlan, error)
}

type FindMealPlansByUserIdRepository interface {
	Find(userId primitive.ObjectID) ([]models.MealPlan, error)
}

type FindMealPlanByIdAndUserIdRepository interface {
	Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.MealPlan, error)
}

type UpdateMealPlanRepository interface {
	Update(id primitive.ObjectID, mealPlan *models.MealPlan) (*models.MealPlan, error)
}

type DeleteMealPlanRepository interface {
	Delete(id primitive.ObjectID, userId primitive.ObjectID) error
}

type AddMealPlanEntryRepository interface {
	AddEntry(id primitive.ObjectID, userId primitive.ObjectID, entry *models.MealPlanEntry) (*models.MealPlan, error)
}

type RemoveMealPlanEntryRepository interface {
	RemoveEntry(id primitive.ObjectID, userId primitive.ObjectID, entryIndex int) (*models.MealPlan, error)
}
