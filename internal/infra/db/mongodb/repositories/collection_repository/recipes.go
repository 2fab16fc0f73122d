package collection_repository

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

type AddRecipeToCollectionRepository struct {
	Db *mongo.Database
}

func NewAddRecipeToCollectionRepository(db *mongo.Database) *AddRecipeToCollectionRepository {
	return &AddRecipeToCollectionRepository{
		Db: db,
	}
}

// AddRecipe uses $addToSet so adding the same recipe twice is a no-op.
func (r *AddRecipeToCollectionRepository) AddRecipe(id primitive.ObjectID, userId primitive.ObjectID, recipeId primitive.ObjectID) (*models.Collection, error) {
	coll := r.Db.Collection("collection")

	update := bson.M{
		"$addToSet": bson.M{"recipe_ids": recipeId},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := coll.FindOneAndUpdate(ctx, bson.M{"_id": id, "user_id": userId}, update, opts)
	if result.Err() == mongo.ErrNoDocuments {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	var collection models.Collection
	if err := result.Decode(&collection); err != nil {
		return nil, err
	}

	return &collection, nil
}

type RemoveRecipeFromCollectionRepository struct {
	Db *mongo.Database
}

func NewRemoveRecipeFromCollectionRepository(db *mongo.Database) *RemoveRecipeFromCollectionRepository {
	return &RemoveRecipeFromCollectionRepository{
		Db: db,
	}
}

func (r *RemoveRecipeFromCollectionRepository) RemoveRecipe(id primitive.ObjectID, userId primitive.ObjectID, recipeId primitive.ObjectID) (*models.Collection, error) {
	coll := r.Db.Collection("collection")

	update := bson.M{
		"$pull": bson.M{"recipe_ids": recipeId},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := coll.FindOneAndUpdate(ctx, bson.M{"_id": id, "user_id": userId}, update, opts)
	if result.Err() == mongo.ErrNoDocuments {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	var collection models.Collection
	if err := result.Decode(&collection); err != nil {
		return nil, err
	}

	return &collection, nil
}
