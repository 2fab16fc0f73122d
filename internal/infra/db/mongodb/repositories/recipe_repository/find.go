package recipe_repository

import (
	"context"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindRecipesByUserIdRepository struct {
	Db *mongo.Database
}

func NewFindRecipesByUserIdRepository(db *mongo.Database) *FindRecipesByUserIdRepository {
	return &FindRecipesByUserIdRepository{
		Db: db,
	}
}

func (r *FindRecipesByUserIdRepository) Find(userId primitive.ObjectID) ([]models.Recipe, error) {
	collection := r.Db.Collection("recipe")

	filter := bson.M{"user_id": userId}
	opts := options.Find().SetSort(bson.M{"created_at": -1})

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var recipes []models.Recipe
	if err = cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}

	return recipes, nil
}

// FindVerified lists recipes any user can browse: the ones a
// nutritionist has marked VERIFIED.
func (r *FindRecipesByUserIdRepository) FindVerified() ([]models.Recipe, error) {
	collection := r.Db.Collection("recipe")

	filter := bson.M{"verification.status": "VERIFIED"}
	opts := options.Find().SetSort(bson.M{"created_at": -1})

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var recipes []models.Recipe
	if err = cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}

	return recipes, nil
}
