package recipe_repository

import (
	"context"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindRecipesByIdsRepository struct {
	Db *mongo.Database
}

func NewFindRecipesByIdsRepository(db *mongo.Database) *FindRecipesByIdsRepository {
	return &FindRecipesByIdsRepository{
		Db: db,
	}
}

// FindByIds fetches every referenced recipe in one query, so the
// shopping list generator reads its whole input as a single snapshot.
func (r *FindRecipesByIdsRepository) FindByIds(ids []primitive.ObjectID) ([]models.Recipe, error) {
	if len(ids) == 0 {
		return []models.Recipe{}, nil
	}

	collection := r.Db.Collection("recipe")

	filter := bson.M{"_id": bson.M{"$in": ids}}
	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var recipes []models.Recipe
	if err = cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}

	return recipes, nil
}
