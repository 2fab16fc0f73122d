package recipe

import (
	"bytes"
	"encoding/json"
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

type stubCreateRecipe struct {
	created *models.Recipe
}

func (s *stubCreateRecipe) Create(recipe *models.Recipe) (*models.Recipe, error) {
	recipe.Id = primitive.NewObjectID()
	s.created = recipe
	return recipe, nil
}

func (s *stubCreateRecipe) CreateMany(recipes []*models.Recipe) ([]*models.Recipe, error) {
	for _, recipe := range recipes {
		recipe.Id = primitive.NewObjectID()
	}
	return recipes, nil
}

func createRequest(t *testing.T, userId primitive.ObjectID, body string) presentationProtocols.HttpRequest {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/recipe", bytes.NewBufferString(body))
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

func TestCreateRecipeStoresIngredientLines(t *testing.T) {
	userId := primitive.NewObjectID()
	repo := &stubCreateRecipe{}
	controller := NewCreateRecipeController(repo)

	res := controller.Handle(createRequest(t, userId, `{
		"title": "Pancakes",
		"servings": 4,
		"ingredients": [
			{"ingredientName": "Flour", "unitName": "cup", "quantity": "2.5"},
			{"ingredientName": "Butter", "unitName": "tbsp", "quantity": "3", "notes": "melted"}
		]
	}`))
	require.Equal(t, http.StatusCreated, res.StatusCode)

	recipe := decodeBody[models.Recipe](t, res)
	assert.Equal(t, userId, recipe.UserId)
	assert.Equal(t, "Pancakes", recipe.Title)
	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, "2.5", recipe.Ingredients[0].Quantity.String())
	assert.Equal(t, "melted", *recipe.Ingredients[1].Notes)
}

func TestCreateRecipeRequiresIngredients(t *testing.T) {
	controller := NewCreateRecipeController(&stubCreateRecipe{})

	res := controller.Handle(createRequest(t, primitive.NewObjectID(), `{
		"title": "Empty",
		"servings": 2,
		"ingredients": []
	}`))
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
}

func TestCreateRecipeRejectsNonPositiveQuantity(t *testing.T) {
	controller := NewCreateRecipeController(&stubCreateRecipe{})

	res := controller.Handle(createRequest(t, primitive.NewObjectID(), `{
		"title": "Bad quantity",
		"servings": 2,
		"ingredients": [
			{"ingredientName": "Flour", "unitName": "cup", "quantity": "0"}
		]
	}`))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
