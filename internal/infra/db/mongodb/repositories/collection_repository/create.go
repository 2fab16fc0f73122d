package collection_repository

import (
	"context"
	"time"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateCollectionRepository struct {
	Db *mongo.Database
}

func NewCreateCollectionRepository(db *mongo.Database) *CreateCollectionRepository {
	return &CreateCollectionRepository{
		Db: db,
	}
}

func (r *CreateCollectionRepository) Create(collection *models.Collection) (*models.Collection, error) {
	coll := r.Db.Collection("collection")

	collection.Id = primitive.NewObjectID()
	collection.CreatedAt = time.Now().UTC()
	collection.UpdatedAt = time.Now().UTC()

	if collection.RecipeIds == nil {
		collection.RecipeIds = []primitive.ObjectID{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()
	_, err := coll.InsertOne(ctx, collection)
	if err != nil {
		return nil, err
	}

	return collection, nil
}
