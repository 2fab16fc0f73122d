package shopping_list

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubFindMealPlanByIdAndUserId struct {
	mealPlan *models.MealPlan
	err      error
}

func (s *stubFindMealPlanByIdAndUserId) Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.MealPlan, error) {
	if s.mealPlan != nil && (s.mealPlan.Id != id || s.mealPlan.UserId != userId) {
		return nil, s.err
	}
	return s.mealPlan, s.err
}

type stubFindRecipesByIds struct {
	recipes []models.Recipe
	err     error
}

func (s *stubFindRecipesByIds) FindByIds(ids []primitive.ObjectID) ([]models.Recipe, error) {
	return s.recipes, s.err
}

type stubCreateShoppingList struct {
	created []*models.ShoppingList
	err     error
}

func (s *stubCreateShoppingList) Create(shoppingList *models.ShoppingList) (*models.ShoppingList, error) {
	if s.err != nil {
		return nil, s.err
	}
	shoppingList.Id = primitive.NewObjectID()
	for i := range shoppingList.Items {
		if shoppingList.Items[i].Id.IsZero() {
			shoppingList.Items[i].Id = primitive.NewObjectID()
		}
	}
	s.created = append(s.created, shoppingList)
	return shoppingList, nil
}

func generateRequest(t *testing.T, userId primitive.ObjectID, body string) presentationProtocols.HttpRequest {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/shopping-list/generate", bytes.NewBufferString(body))
	req.Header.Set("UserId", userId.Hex())

	return presentationProtocols.HttpRequest{
		Body:   io.NopCloser(bytes.NewBufferString(body)),
		Header: req.Header,
		Req:    req,
	}
}

func decodeBody[T any](t *testing.T, res *presentationProtocols.HttpResponse) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return out
}

func TestGenerateShoppingListRequiresMealPlanId(t *testing.T) {
	controller := NewGenerateShoppingListController(
		&stubFindMealPlanByIdAndUserId{},
		&stubFindRecipesByIds{},
		&stubCreateShoppingList{},
	)

	res := controller.Handle(generateRequest(t, primitive.NewObjectID(), `{}`))

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGenerateShoppingListMealPlanNotFound(t *testing.T) {
	controller := NewGenerateShoppingListController(
		&stubFindMealPlanByIdAndUserId{mealPlan: nil},
		&stubFindRecipesByIds{},
		&stubCreateShoppingList{},
	)

	body := fmt.Sprintf(`{"mealPlanId":%q}`, primitive.NewObjectID().Hex())
	res := controller.Handle(generateRequest(t, primitive.NewObjectID(), body))

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestGenerateShoppingListEmptyPlanProducesEmptyList(t *testing.T) {
	userId := primitive.NewObjectID()
	mealPlan := &models.MealPlan{
		Id:       primitive.NewObjectID(),
		UserId:   userId,
		PlanName: "Week 10",
		Entries:  []models.MealPlanEntry{},
	}

	creator := &stubCreateShoppingList{}
	controller := NewGenerateShoppingListController(
		&stubFindMealPlanByIdAndUserId{mealPlan: mealPlan},
		&stubFindRecipesByIds{recipes: []models.Recipe{}},
		creator,
	)

	body := fmt.Sprintf(`{"mealPlanId":%q}`, mealPlan.Id.Hex())
	res := controller.Handle(generateRequest(t, userId, body))

	require.Equal(t, http.StatusCreated, res.StatusCode)
	created := decodeBody[models.ShoppingList](t, res)
	assert.Empty(t, created.Items)
	assert.Equal(t, "Shopping List - Week 10", created.ListName)
	require.NotNil(t, created.MealPlanId)
	assert.Equal(t, mealPlan.Id, *created.MealPlanId)
}

func TestGenerateShoppingListAggregatesAcrossRecipes(t *testing.T) {
	userId := primitive.NewObjectID()

	flourA, err := models.NewDecimalFromString("1")
	require.NoError(t, err)
	flourB, err := models.NewDecimalFromString("0.5")
	require.NoError(t, err)

	recipeA := models.Recipe{
		Id: primitive.NewObjectID(),
		Ingredients: []models.RecipeIngredient{
			{IngredientName: "flour", UnitName: "cup", Quantity: flourA},
		},
	}
	recipeB := models.Recipe{
		Id: primitive.NewObjectID(),
		Ingredients: []models.RecipeIngredient{
			{IngredientName: "Flour", UnitName: "cup", Quantity: flourB},
		},
	}

	mealPlan := &models.MealPlan{
		Id:       primitive.NewObjectID(),
		UserId:   userId,
		PlanName: "Baking week",
		Entries: []models.MealPlanEntry{
			{RecipeId: recipeA.Id, ServingsToPrepare: 2},
			{RecipeId: recipeB.Id, ServingsToPrepare: 1},
		},
	}

	controller := NewGenerateShoppingListController(
		&stubFindMealPlanByIdAndUserId{mealPlan: mealPlan},
		&stubFindRecipesByIds{recipes: []models.Recipe{recipeA, recipeB}},
		&stubCreateShoppingList{},
	)

	body := fmt.Sprintf(`{"mealPlanId":%q,"listName":"Groceries"}`, mealPlan.Id.Hex())
	res := controller.Handle(generateRequest(t, userId, body))

	require.Equal(t, http.StatusCreated, res.StatusCode)
	created := decodeBody[models.ShoppingList](t, res)
	assert.Equal(t, "Groceries", created.ListName)
	require.Len(t, created.Items, 1)
	assert.Equal(t, "flour", created.Items[0].ItemName)
	assert.Equal(t, "2.5", created.Items[0].Quantity.String())
}

// Generating twice from the same plan creates two independent lists
// with equal item sets but distinct ids.
func TestGenerateShoppingListDoesNotMergeIntoExistingLists(t *testing.T) {
	userId := primitive.NewObjectID()

	quantity, err := models.NewDecimalFromString("3")
	require.NoError(t, err)

	recipe := models.Recipe{
		Id: primitive.NewObjectID(),
		Ingredients: []models.RecipeIngredient{
			{IngredientName: "egg", UnitName: "unit", Quantity: quantity},
		},
	}

	mealPlan := &models.MealPlan{
		Id:       primitive.NewObjectID(),
		UserId:   userId,
		PlanName: "Brunch",
		Entries:  []models.MealPlanEntry{{RecipeId: recipe.Id, ServingsToPrepare: 2}},
	}

	creator := &stubCreateShoppingList{}
	controller := NewGenerateShoppingListController(
		&stubFindMealPlanByIdAndUserId{mealPlan: mealPlan},
		&stubFindRecipesByIds{recipes: []models.Recipe{recipe}},
		creator,
	)

	body := fmt.Sprintf(`{"mealPlanId":%q}`, mealPlan.Id.Hex())
	first := controller.Handle(generateRequest(t, userId, body))
	second := controller.Handle(generateRequest(t, userId, body))

	require.Equal(t, http.StatusCreated, first.StatusCode)
	require.Equal(t, http.StatusCreated, second.StatusCode)
	require.Len(t, creator.created, 2)

	assert.NotEqual(t, creator.created[0].Id, creator.created[1].Id)
	require.Len(t, creator.created[0].Items, 1)
	require.Len(t, creator.created[1].Items, 1)
	assert.Equal(t, creator.created[0].Items[0].ItemName, creator.created[1].Items[0].ItemName)
	assert.True(t, creator.created[0].Items[0].Quantity.Equal(creator.created[1].Items[0].Quantity.Decimal))
	assert.Equal(t, creator.created[0].Items[0].Unit, creator.created[1].Items[0].Unit)
}
