package meal_plan_repository

import (
	"context"
	"time"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateMealPlanRepository struct {
	Db *mongo.Database
}

func NewUpdateMealPlanRepository(db *mongo.Database) *UpdateMealPlanRepository {
	return &UpdateMealPlanRepository{
		Db: db,
	}
}

func (r *UpdateMealPlanRepository) Update(id primitive.ObjectID, mealPlan *models.MealPlan) (*models.MealPlan, error) {
	collection := r.Db.Collection("meal_plan")

	mealPlan.UpdatedAt = time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"plan_name":  mealPlan.PlanName,
			"start_date": mealPlan.StartDate,
			"end_date":   mealPlan.EndDate,
			"updated_at": mealPlan.UpdatedAt,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, bson.M{"_id": id, "user_id": mealPlan.UserId}, update)
	if err != nil {
		return nil, err
	}

	mealPlan.Id = id

	return mealPlan, nil
}
