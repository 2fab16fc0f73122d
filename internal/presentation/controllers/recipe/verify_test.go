package recipe

import (
	"bytes"
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

type stubVerifyRecipe struct {
	recipe *models.Recipe
}

func (s *stubVerifyRecipe) Verify(recipeId primitive.ObjectID, verification *models.RecipeVerification) (*models.Recipe, error) {
	if s.recipe == nil || s.recipe.Id != recipeId {
		return nil, nil
	}
	s.recipe.Verification = verification
	return s.recipe, nil
}

func verifyRequest(t *testing.T, userId primitive.ObjectID, recipeId string, body string) presentationProtocols.HttpRequest {
	t.Helper()

	req := httptest.NewRequest(http.MethodPatch, "/recipe/"+recipeId+"/verify", bytes.NewBufferString(body))
	req.Header.Set("UserId", userId.Hex())
	req.SetPathValue("recipeId", recipeId)

	return presentationProtocols.HttpRequest{
		Body:   io.NopCloser(bytes.NewBufferString(body)),
		Header: req.Header,
		Req:    req,
	}
}

func TestVerifyRecipeRecordsVerification(t *testing.T) {
	nutritionistId := primitive.NewObjectID()
	recipe := &models.Recipe{
		Id:     primitive.NewObjectID(),
		UserId: primitive.NewObjectID(),
		Title:  "Lentil soup",
	}

	controller := NewVerifyRecipeController(&stubVerifyRecipe{recipe: recipe})

	res := controller.Handle(verifyRequest(t, nutritionistId, recipe.Id.Hex(), `{"status":"VERIFIED","notes":"good source of fibre"}`))
	require.Equal(t, http.StatusOK, res.StatusCode)

	verified := decodeBody[models.Recipe](t, res)
	require.NotNil(t, verified.Verification)
	assert.Equal(t, nutritionistId, verified.Verification.NutritionistId)
	assert.Equal(t, "good source of fibre", *verified.Verification.Notes)
	assert.True(t, verified.IsVerified())
}

func TestVerifyRecipeRejectedIsNotVerified(t *testing.T) {
	recipe := &models.Recipe{
		Id:     primitive.NewObjectID(),
		UserId: primitive.NewObjectID(),
		Title:  "Deep fried butter",
	}

	controller := NewVerifyRecipeController(&stubVerifyRecipe{recipe: recipe})

	res := controller.Handle(verifyRequest(t, primitive.NewObjectID(), recipe.Id.Hex(), `{"status":"REJECTED"}`))
	require.Equal(t, http.StatusOK, res.StatusCode)

	rejected := decodeBody[models.Recipe](t, res)
	require.NotNil(t, rejected.Verification)
	assert.False(t, rejected.IsVerified())
}

func TestVerifyRecipeRejectsUnknownStatus(t *testing.T) {
	controller := NewVerifyRecipeController(&stubVerifyRecipe{})

	res := controller.Handle(verifyRequest(t, primitive.NewObjectID(), primitive.NewObjectID().Hex(), `{"status":"MAYBE"}`))
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
}

func TestVerifyRecipeNotFound(t *testing.T) {
	controller := NewVerifyRecipeController(&stubVerifyRecipe{})

	res := controller.Handle(verifyRequest(t, primitive.NewObjectID(), primitive.NewObjectID().Hex(), `{"status":"VERIFIED"}`))
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestVerifyRecipeRejectsMalformedId(t *testing.T) {
	controller := NewVerifyRecipeController(&stubVerifyRecipe{})

	res := controller.Handle(verifyRequest(t, primitive.NewObjectID(), "not-an-id", `{"status":"VERIFIED"}`))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
