package recipe_repository

import (
	"context"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindRecipeByIdRepository struct {
	Db *mongo.Database
}

func NewFindRecipeByIdRepository(db *mongo.Database) *FindRecipeByIdRepository {
	return &FindRecipeByIdRepository{
		Db: db,
	}
}

func (r *FindRecipeByIdRepository) Find(id primitive.ObjectID) (*models.Recipe, error) {
	collection := r.Db.Collection("recipe")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := collection.FindOne(ctx, bson.M{"_id": id})
	if result.Err() == mongo.ErrNoDocuments {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	var recipe models.Recipe
	if err := result.Decode(&recipe); err != nil {
		return nil, err
	}

	return &recipe, nil
}

type FindRecipeByIdAndUserIdRepository struct {
	Db *mongo.Database
}

func NewFindRecipeByIdAndUserIdRepository(db *mongo.Database) *FindRecipeByIdAndUserIdRepository {
	return &FindRecipeByIdAndUserIdRepository{
		Db: db,
	}
}

func (r *FindRecipeByIdAndUserIdRepository) Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.Recipe, error) {
	collection := r.Db.Collection("recipe")

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

	var recipe models.Recipe
	if err := result.Decode(&recipe); err != nil {
		return nil, err
	}

	return &recipe, nil
}
