package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Collection struct {
	Id             primitive.ObjectID   `bson:"_id" json:"id"`
	UserId         primitive.ObjectID   `bson:"user_id" json:"userId"`
	CollectionName string               `bson:"collection_name" json:"collectionName"`
	Description    *string              `bson:"description" json:"description,omitempty"`
	RecipeIds      []primitive.ObjectID `bson:"recipe_ids" json:"recipeIds"`
	CreatedAt      time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time            `bson:"updated_at" json:"updatedAt"`
}
