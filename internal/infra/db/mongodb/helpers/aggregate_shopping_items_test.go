package helpers

import (
	"testing"
	"time"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string {
	return &s
}

func ingredient(name, unit, quantity string, notes *string) models.RecipeIngredient {
	q, err := models.NewDecimalFromString(quantity)
	if err != nil {
		panic(err)
	}
	return models.RecipeIngredient{
		IngredientName: name,
		UnitName:       unit,
		Quantity:       q,
		Notes:          notes,
	}
}

func entry(recipeId primitive.ObjectID, servings int) models.MealPlanEntry {
	return models.MealPlanEntry{
		RecipeId:          recipeId,
		ServingsToPrepare: servings,
		MealDate:          time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		MealType:          "DINNER",
	}
}

func TestAggregateShoppingItemsMergesCaseInsensitiveNames(t *testing.T) {
	recipeA := models.Recipe{
		Id:          primitive.NewObjectID(),
		Ingredients: []models.RecipeIngredient{ingredient("flour", "cup", "1", nil)},
	}
	recipeB := models.Recipe{
		Id:          primitive.NewObjectID(),
		Ingredients: []models.RecipeIngredient{ingredient("Flour", "cup", "0.5", nil)},
	}

	items := AggregateShoppingItems(
		[]models.MealPlanEntry{entry(recipeA.Id, 2), entry(recipeB.Id, 1)},
		map[primitive.ObjectID]models.Recipe{recipeA.Id: recipeA, recipeB.Id: recipeB},
	)

	require.Len(t, items, 1)
	assert.Equal(t, "flour", items[0].ItemName, "keeps first-seen casing")
	assert.Equal(t, "2.5", items[0].Quantity.String())
	require.NotNil(t, items[0].Unit)
	assert.Equal(t, "cup", *items[0].Unit)
	assert.Equal(t, 0, items[0].SortOrder)
	assert.False(t, items[0].IsCompleted)
}

func TestAggregateShoppingItemsDoesNotMergeDifferentUnits(t *testing.T) {
	recipeA := models.Recipe{
		Id:          primitive.NewObjectID(),
		Ingredients: []models.RecipeIngredient{ingredient("sugar", "cup", "1", nil)},
	}
	recipeB := models.Recipe{
		Id:          primitive.NewObjectID(),
		Ingredients: []models.RecipeIngredient{ingredient("sugar", "g", "200", nil)},
	}

	items := AggregateShoppingItems(
		[]models.MealPlanEntry{entry(recipeA.Id, 1), entry(recipeB.Id, 1)},
		map[primitive.ObjectID]models.Recipe{recipeA.Id: recipeA, recipeB.Id: recipeB},
	)

	require.Len(t, items, 2)
	assert.Equal(t, "cup", *items[0].Unit)
	assert.Equal(t, "1", items[0].Quantity.String())
	assert.Equal(t, "g", *items[1].Unit)
	assert.Equal(t, "200", items[1].Quantity.String())
}

func TestAggregateShoppingItemsUnitCaseIsExact(t *testing.T) {
	recipeA := models.Recipe{
		Id:          primitive.NewObjectID(),
		Ingredients: []models.RecipeIngredient{ingredient("milk", "Cup", "1", nil)},
	}
	recipeB := models.Recipe{
		Id:          primitive.NewObjectID(),
		Ingredients: []models.RecipeIngredient{ingredient("milk", "cup", "1", nil)},
	}

	items := AggregateShoppingItems(
		[]models.MealPlanEntry{entry(recipeA.Id, 1), entry(recipeB.Id, 1)},
		map[primitive.ObjectID]models.Recipe{recipeA.Id: recipeA, recipeB.Id: recipeB},
	)

	assert.Len(t, items, 2, "units are compared exactly, no case folding")
}

func TestAggregateShoppingItemsScalingIsExactDecimal(t *testing.T) {
	recipe := models.Recipe{
		Id:          primitive.NewObjectID(),
		Ingredients: []models.RecipeIngredient{ingredient("vanilla extract", "tsp", "0.1", nil)},
	}

	items := AggregateShoppingItems(
		[]models.MealPlanEntry{entry(recipe.Id, 1), entry(recipe.Id, 1), entry(recipe.Id, 1)},
		map[primitive.ObjectID]models.Recipe{recipe.Id: recipe},
	)

	require.Len(t, items, 1)
	assert.Equal(t, "0.3", items[0].Quantity.String(), "no 0.30000000000000004 artifacts")
}

func TestAggregateShoppingItemsNotesLastWriteWins(t *testing.T) {
	recipeA := models.Recipe{
		Id:          primitive.NewObjectID(),
		Ingredients: []models.RecipeIngredient{ingredient("butter", "g", "100", strPtr("unsalted"))},
	}
	recipeB := models.Recipe{
		Id:          primitive.NewObjectID(),
		Ingredients: []models.RecipeIngredient{ingredient("butter", "g", "50", strPtr("softened"))},
	}

	items := AggregateShoppingItems(
		[]models.MealPlanEntry{entry(recipeA.Id, 1), entry(recipeB.Id, 1)},
		map[primitive.ObjectID]models.Recipe{recipeA.Id: recipeA, recipeB.Id: recipeB},
	)

	require.Len(t, items, 1)
	require.NotNil(t, items[0].Notes)
	assert.Equal(t, "softened", *items[0].Notes)
}

func TestAggregateShoppingItemsSortOrderFollowsFirstSeen(t *testing.T) {
	recipe := models.Recipe{
		Id: primitive.NewObjectID(),
		Ingredients: []models.RecipeIngredient{
			ingredient("onion", "unit", "2", nil),
			ingredient("garlic", "clove", "3", nil),
			ingredient("onion", "unit", "1", nil),
		},
	}

	items := AggregateShoppingItems(
		[]models.MealPlanEntry{entry(recipe.Id, 1)},
		map[primitive.ObjectID]models.Recipe{recipe.Id: recipe},
	)

	require.Len(t, items, 2)
	assert.Equal(t, "onion", items[0].ItemName)
	assert.Equal(t, 0, items[0].SortOrder)
	assert.Equal(t, "3", items[0].Quantity.String())
	assert.Equal(t, "garlic", items[1].ItemName)
	assert.Equal(t, 1, items[1].SortOrder)
}

func TestAggregateShoppingItemsScalesByServings(t *testing.T) {
	recipe := models.Recipe{
		Id: primitive.NewObjectID(),
		Ingredients: []models.RecipeIngredient{
			ingredient("rice", "cup", "1.5", nil),
		},
	}

	items := AggregateShoppingItems(
		[]models.MealPlanEntry{entry(recipe.Id, 4)},
		map[primitive.ObjectID]models.Recipe{recipe.Id: recipe},
	)

	require.Len(t, items, 1)
	assert.Equal(t, "6", items[0].Quantity.String())
}

func TestAggregateShoppingItemsEmptyEntries(t *testing.T) {
	items := AggregateShoppingItems(nil, map[primitive.ObjectID]models.Recipe{})
	assert.Empty(t, items)
}

func TestAggregateShoppingItemsSkipsMissingRecipes(t *testing.T) {
	known := models.Recipe{
		Id:          primitive.NewObjectID(),
		Ingredients: []models.RecipeIngredient{ingredient("salt", "tsp", "1", nil)},
	}

	items := AggregateShoppingItems(
		[]models.MealPlanEntry{entry(primitive.NewObjectID(), 2), entry(known.Id, 1)},
		map[primitive.ObjectID]models.Recipe{known.Id: known},
	)

	require.Len(t, items, 1)
	assert.Equal(t, "salt", items[0].ItemName)
}
