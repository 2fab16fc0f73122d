package meal_plan

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubFindRecipeById struct {
	recipe *models.Recipe
}

func (s *stubFindRecipeById) Find(id primitive.ObjectID) (*models.Recipe, error) {
	if s.recipe == nil || s.recipe.Id != id {
		return nil, nil
	}
	return s.recipe, nil
}

type stubAddEntry struct {
	plan *models.MealPlan
}

func (s *stubAddEntry) AddEntry(id primitive.ObjectID, userId primitive.ObjectID, entry *models.MealPlanEntry) (*models.MealPlan, error) {
	if s.plan == nil || s.plan.Id != id || s.plan.UserId != userId {
		return nil, nil
	}
	s.plan.Entries = append(s.plan.Entries, *entry)
	return s.plan, nil
}

func addEntryRequest(t *testing.T, userId primitive.ObjectID, planId string, body string) presentationProtocols.HttpRequest {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/meal-plan/"+planId+"/entry", bytes.NewBufferString(body))
	req.Header.Set("UserId", userId.Hex())
	req.SetPathValue("planId", planId)

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

func TestAddEntryAppendsToPlan(t *testing.T) {
	userId := primitive.NewObjectID()
	recipe := &models.Recipe{Id: primitive.NewObjectID(), UserId: userId, Title: "Chili"}
	plan := &models.MealPlan{Id: primitive.NewObjectID(), UserId: userId, PlanName: "Week 36"}

	controller := NewAddMealPlanEntryController(
		&stubFindRecipeById{recipe: recipe},
		&stubAddEntry{plan: plan},
	)

	res := controller.Handle(addEntryRequest(t, userId, plan.Id.Hex(), `{
		"recipeId": "`+recipe.Id.Hex()+`",
		"servingsToPrepare": 6,
		"mealDate": "2026-09-02",
		"mealType": "DINNER"
	}`))
	require.Equal(t, http.StatusCreated, res.StatusCode)

	updated := decodeBody[models.MealPlan](t, res)
	require.Len(t, updated.Entries, 1)
	assert.Equal(t, recipe.Id, updated.Entries[0].RecipeId)
	assert.Equal(t, 6, updated.Entries[0].ServingsToPrepare)
	assert.Equal(t, "DINNER", updated.Entries[0].MealType)
	assert.Equal(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), updated.Entries[0].MealDate)
}

func TestAddEntryRejectsZeroServings(t *testing.T) {
	userId := primitive.NewObjectID()
	recipe := &models.Recipe{Id: primitive.NewObjectID(), UserId: userId}
	plan := &models.MealPlan{Id: primitive.NewObjectID(), UserId: userId}

	controller := NewAddMealPlanEntryController(
		&stubFindRecipeById{recipe: recipe},
		&stubAddEntry{plan: plan},
	)

	res := controller.Handle(addEntryRequest(t, userId, plan.Id.Hex(), `{
		"recipeId": "`+recipe.Id.Hex()+`",
		"servingsToPrepare": 0,
		"mealDate": "2026-09-02",
		"mealType": "LUNCH"
	}`))
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
}

func TestAddEntryUnknownRecipeNotFound(t *testing.T) {
	userId := primitive.NewObjectID()
	plan := &models.MealPlan{Id: primitive.NewObjectID(), UserId: userId}

	controller := NewAddMealPlanEntryController(
		&stubFindRecipeById{},
		&stubAddEntry{plan: plan},
	)

	res := controller.Handle(addEntryRequest(t, userId, plan.Id.Hex(), `{
		"recipeId": "`+primitive.NewObjectID().Hex()+`",
		"servingsToPrepare": 2,
		"mealDate": "2026-09-02",
		"mealType": "BREAKFAST"
	}`))
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestAddEntryOtherUsersUnverifiedRecipeNotFound(t *testing.T) {
	userId := primitive.NewObjectID()
	recipe := &models.Recipe{Id: primitive.NewObjectID(), UserId: primitive.NewObjectID()}
	plan := &models.MealPlan{Id: primitive.NewObjectID(), UserId: userId}

	controller := NewAddMealPlanEntryController(
		&stubFindRecipeById{recipe: recipe},
		&stubAddEntry{plan: plan},
	)

	res := controller.Handle(addEntryRequest(t, userId, plan.Id.Hex(), `{
		"recipeId": "`+recipe.Id.Hex()+`",
		"servingsToPrepare": 2,
		"mealDate": "2026-09-02",
		"mealType": "SNACK"
	}`))
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
