package helpers

import (
	"strings"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ingredientKey merges ingredient lines across recipes and entries.
// Name is case-folded, unit is compared exactly: "2 cups" and "480 ml"
// of the same ingredient stay separate, no unit conversion happens here.
// A struct key avoids the collisions a concatenated string key would
// allow (ingredient "a-b" unit "c" vs ingredient "a" unit "b-c").
type ingredientKey struct {
	Name string
	Unit string
}

// AggregateShoppingItems turns a meal plan's entries into shopping list
// items in a single deterministic pass. Each ingredient line is scaled by
// the entry's servings multiplier and summed per (name, unit) key with
// exact decimal arithmetic. Items come out in first-seen order, keeping
// the original casing of the first contributing line's ingredient name.
//
// Notes on a merged item are taken from the last contributing line
// (last write wins). Earlier notes are dropped, not concatenated; this
// mirrors the documented list-generation policy even though it silently
// discards information.
//
// Entries whose recipe is missing from the map are skipped.
func AggregateShoppingItems(entries []models.MealPlanEntry, recipes map[primitive.ObjectID]models.Recipe) []models.ShoppingListItem {
	order := []ingredientKey{}
	aggregated := make(map[ingredientKey]*models.ShoppingListItem)

	for _, entry := range entries {
		recipe, found := recipes[entry.RecipeId]
		if !found {
			continue
		}

		servings := models.NewDecimalFromInt(int64(entry.ServingsToPrepare))

		for _, line := range recipe.Ingredients {
			key := ingredientKey{
				Name: strings.ToLower(line.IngredientName),
				Unit: line.UnitName,
			}

			scaled := line.Quantity.Mul(servings.Decimal)

			if item, exists := aggregated[key]; exists {
				item.Quantity = models.NewDecimal(item.Quantity.Add(scaled))
				item.Notes = line.Notes
				continue
			}

			unit := line.UnitName
			aggregated[key] = &models.ShoppingListItem{
				Id:       primitive.NewObjectID(),
				ItemName: line.IngredientName,
				Quantity: models.NewDecimal(scaled),
				Unit:     &unit,
				Notes:    line.Notes,
			}
			order = append(order, key)
		}
	}

	items := make([]models.ShoppingListItem, 0, len(order))
	for i, key := range order {
		item := aggregated[key]
		item.SortOrder = i
		items = append(items, *item)
	}

	return items
}
