package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ShoppingListItem struct {
	Id          primitive.ObjectID `bson:"_id" json:"id"`
	ItemName    string             `bson:"item_name" json:"itemName"`
	Quantity    Decimal            `bson:"quantity" json:"quantity"`
	Unit        *string            `bson:"unit" json:"unit,omitempty"`
	Notes       *string            `bson:"notes" json:"notes,omitempty"`
	IsCompleted bool               `bson:"is_completed" json:"isCompleted"`
	SortOrder   int                `bson:"sort_order" json:"sortOrder"`
}

// ShoppingList is a snapshot taken at generation time. MealPlanId is a
// back reference only: deleting the meal plan leaves the list untouched,
// and later changes to the plan or its recipes are never resynced here.
type ShoppingList struct {
	Id         primitive.ObjectID  `bson:"_id" json:"id"`
	UserId     primitive.ObjectID  `bson:"user_id" json:"userId"`
	ListName   string              `bson:"list_name" json:"listName"`
	MealPlanId *primitive.ObjectID `bson:"meal_plan_id" json:"mealPlanId,omitempty"`
	Items      []ShoppingListItem  `bson:"items" json:"items"`
	CreatedAt  time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time           `bson:"updated_at" json:"updatedAt"`
}
