package meal_plan_repository

import (
	"context"
	"time"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AddMealPlanEntryRepository struct {
	Db *mongo.Database
}

func NewAddMealPlanEntryRepository(db *mongo.Database) *AddMealPlanEntryRepository {
	return &AddMealPlanEntryRepository{
		Db: db,
	}
}

func (r *AddMealPlanEntryRepository) AddEntry(id primitive.ObjectID, userId primitive.ObjectID, entry *models.MealPlanEntry) (*models.MealPlan, error) {
	collection := r.Db.Collection("meal_plan")

	update := bson.M{
		"$push": bson.M{"entries": entry},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "user_id": userId}, update, opts)
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

type RemoveMealPlanEntryRepository struct {
	Db *mongo.Database
}

func NewRemoveMealPlanEntryRepository(db *mongo.Database) *RemoveMealPlanEntryRepository {
	return &RemoveMealPlanEntryRepository{
		Db: db,
	}
}

// RemoveEntry drops the entry at the given position. Mongo cannot pull
// by index, so the document is read with its ownership filter, the
// entry sliced out and the whole array written back.
func (r *RemoveMealPlanEntryRepository) RemoveEntry(id primitive.ObjectID, userId primitive.ObjectID, entryIndex int) (*models.MealPlan, error) {
	collection := r.Db.Collection("meal_plan")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := collection.FindOne(ctx, bson.M{"_id": id, "user_id": userId})
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

	if entryIndex < 0 || entryIndex >= len(mealPlan.Entries) {
		return nil, nil
	}

	mealPlan.Entries = append(mealPlan.Entries[:entryIndex], mealPlan.Entries[entryIndex+1:]...)
	mealPlan.UpdatedAt = time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"entries":    mealPlan.Entries,
			"updated_at": mealPlan.UpdatedAt,
		},
	}

	_, err := collection.UpdateOne(ctx, bson.M{"_id": id, "user_id": userId}, update)
	if err != nil {
		return nil, err
	}

	return &mealPlan, nil
}
