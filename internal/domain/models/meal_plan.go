package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MealPlanEntry struct {
	RecipeId          primitive.ObjectID `bson:"recipe_id" json:"recipeId"`
	ServingsToPrepare int                `bson:"servings_to_prepare" json:"servingsToPrepare"`
	MealDate          time.Time          `bson:"meal_date" json:"mealDate"`
	MealType          string             `bson:"meal_type" json:"mealType"` // BREAKFAST | LUNCH | DINNER | SNACK
}

type MealPlan struct {
	Id        primitive.ObjectID `bson:"_id" json:"id"`
	UserId    primitive.ObjectID `bson:"user_id" json:"userId"`
	PlanName  string             `bson:"plan_name" json:"planName"`
	StartDate time.Time          `bson:"start_date" json:"startDate"`
	EndDate   time.Time          `bson:"end_date" json:"endDate"`
	Entries   []MealPlanEntry    `bson:"entries" json:"entries"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// RecipeIds returns the distinct recipes referenced by the plan's entries,
// in first-seen order.
func (m *MealPlan) RecipeIds() []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool)
	ids := []primitive.ObjectID{}
	for _, entry := range m.Entries {
		if !seen[entry.RecipeId] {
			seen[entry.RecipeId] = true
			ids = append(ids, entry.RecipeId)
		}
	}
	return ids
}
