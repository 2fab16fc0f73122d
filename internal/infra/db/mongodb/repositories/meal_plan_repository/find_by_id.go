package meal_plan_repository

import (
	"context"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindMealPlanByIdAndUserIdRepository struct {
	Db *mongo.Database
}

func NewFindMealPlanByIdAndUserIdRepository(db *mongo.Database) *FindMealPlanByIdAndUserIdRepository {
	return &FindMealPlanByIdAndUserIdRepository{
		Db: db,
	}
}

func (r *FindMealPlanByIdAndUserIdRepository) Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.MealPlan, error) {
	collection := r.Db.Collection("meal_plan")

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

	var mealPlan models.MealPlan
	if err := result.Decode(&mealPlan); err != nil {
		return nil, err
	}

	return &mealPlan, nil
}
