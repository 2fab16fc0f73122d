package meal_plan_repository

import (
	"context"
	"time"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateMealPlanRepository struct {
	Db *mongo.Database
}

func NewCreateMealPlanRepository(db *mongo.Database) *CreateMealPlanRepository {
	return &CreateMealPlanRepository{
		Db: db,
	}
}

func (r *CreateMealPlanRepository) Create(mealPlan *models.MealPlan) (*models.MealPlan, error) {
	collection := r.Db.Collection("meal_plan")

	mealPlan.Id = primitive.NewObjectID()
	mealPlan.CreatedAt = time.Now().UTC()
	mealPlan.UpdatedAt = time.Now().UTC()

	if mealPlan.Entries == nil {
		mealPlan.Entries = []models.MealPlanEntry{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()
	_, err := collection.InsertOne(ctx, mealPlan)
	if err != nil {
		return nil, err
	}

	return mealPlan, nil
}
