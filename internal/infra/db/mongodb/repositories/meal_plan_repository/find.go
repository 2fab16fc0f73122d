package meal_plan_repository

import (
	"context"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindMealPlansByUserIdRepository struct {
	Db *mongo.Database
}

func NewFindMealPlansByUserIdRepository(db *mongo.Database) *FindMealPlansByUserIdRepository {
	return &FindMealPlansByUserIdRepository{
		Db: db,
	}
}

func (r *FindMealPlansByUserIdRepository) Find(userId primitive.ObjectID) ([]models.MealPlan, error) {
	collection := r.Db.Collection("meal_plan")

	filter := bson.M{"user_id": userId}
	opts := options.Find().SetSort(bson.M{"start_date": -1})

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var mealPlans []models.MealPlan
	if err = cursor.All(ctx, &mealPlans); err != nil {
		return nil, err
	}

	return mealPlans, nil
}
