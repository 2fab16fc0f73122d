package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RecipeIngredient struct {
	IngredientName string  `bson:"ingredient_name" json:"ingredientName"`
	UnitName       string  `bson:"unit_name" json:"unitName"`
	Quantity       Decimal `bson:"quantity" json:"quantity"`
	Notes          *string `bson:"notes" json:"notes,omitempty"`
}

type RecipeVerification struct {
	NutritionistId primitive.ObjectID `bson:"nutritionist_id" json:"nutritionistId"`
	Status         string             `bson:"status" json:"status"` // VERIFIED | REJECTED
	Notes          *string            `bson:"notes" json:"notes,omitempty"`
	VerifiedAt     time.Time          `bson:"verified_at" json:"verifiedAt"`
}

type Recipe struct {
	Id           primitive.ObjectID  `bson:"_id" json:"id"`
	UserId       primitive.ObjectID  `bson:"user_id" json:"userId"`
	Title        string              `bson:"title" json:"title"`
	Description  string              `bson:"description" json:"description,omitempty"`
	Instructions string              `bson:"instructions" json:"instructions,omitempty"`
	PrepMinutes  int                 `bson:"prep_minutes" json:"prepMinutes"`
	CookMinutes  int                 `bson:"cook_minutes" json:"cookMinutes"`
	Servings     int                 `bson:"servings" json:"servings"`
	Ingredients  []RecipeIngredient  `bson:"ingredients" json:"ingredients"`
	Verification *RecipeVerification `bson:"verification" json:"verification,omitempty"`
	CreatedAt    time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updatedAt"`
}

func (r *Recipe) IsVerified() bool {
	return r.Verification != nil && r.Verification.Status == "VERIFIED"
}
