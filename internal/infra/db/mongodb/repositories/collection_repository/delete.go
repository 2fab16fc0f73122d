package collection_repository

import (
	"context"

	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteCollectionRepository struct {
	Db *mongo.Database
}

func NewDeleteCollectionRepository(db *mongo.Database) *DeleteCollectionRepository {
	return &DeleteCollectionRepository{
		Db: db,
	}
}

func (r *DeleteCollectionRepository) Delete(id primitive.ObjectID, userId primitive.ObjectID) error {
	coll := r.Db.Collection("collection")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": userId})
	if err != nil {
		return err
	}

	return nil
}
