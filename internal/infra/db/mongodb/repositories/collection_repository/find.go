package collection_repository

import (
	"context"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindCollectionsByUserIdRepository struct {
	Db *mongo.Database
}

func NewFindCollectionsByUserIdRepository(db *mongo.Database) *FindCollectionsByUserIdRepository {
	return &FindCollectionsByUserIdRepository{
		Db: db,
	}
}

func (r *FindCollectionsByUserIdRepository) Find(userId primitive.ObjectID) ([]models.Collection, error) {
	coll := r.Db.Collection("collection")

	filter := bson.M{"user_id": userId}
	opts := options.Find().SetSort(bson.M{"created_at": -1})

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var collections []models.Collection
	if err = cursor.All(ctx, &collections); err != nil {
		return nil, err
	}

	return collections, nil
}

type FindCollectionByIdAndUserIdRepository struct {
	Db *mongo.Database
}

func NewFindCollectionByIdAndUserIdRepository(db *mongo.Database) *FindCollectionByIdAndUserIdRepository {
	return &FindCollectionByIdAndUserIdRepository{
		Db: db,
	}
}

func (r *FindCollectionByIdAndUserIdRepository) Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.Collection, error) {
	coll := r.Db.Collection("collection")

	filter := bson.M{"_id": id, "user_id": userId}
	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := coll.FindOne(ctx, filter)
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
