package meal_plan_repository

import (
	"context"

	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteMealPlanRepository struct {
	Db *mongo.Database
}

func NewDeleteMealPlanRepository(db *mongo.Database) *DeleteMealPlanRepository {
	return &DeleteMealPlanRepository{
		Db: db,
	}
}

// Delete removes only the plan document. Shopping lists generated from
// it keep their meal_plan_id back reference; they are snapshots and are
// never cascaded.
func (r *DeleteMealPlanRepository) Delete(id primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("meal_plan")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userId})
	if err != nil {
		return err
	}

	return nil
}
