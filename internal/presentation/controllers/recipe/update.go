package recipe

import (
	"encoding/json"
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateRecipeController struct {
	Validate                          *validator.Validate
	FindRecipeByIdAndUserIdRepository usecase.FindRecipeByIdAndUserIdRepository
	UpdateRecipeRepository            usecase.UpdateRecipeRepository
}

func NewUpdateRecipeController(
	findRecipeByIdAndUserId usecase.FindRecipeByIdAndUserIdRepository,
	updateRecipe usecase.UpdateRecipeRepository,
) *UpdateRecipeController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateRecipeController{
		Validate:                          validate,
		FindRecipeByIdAndUserIdRepository: findRecipeByIdAndUserId,
		UpdateRecipeRepository:            updateRecipe,
	}
}

// Handle rewrites an owned recipe. Any existing verification is cleared
// by the update, since it was issued for the previous content.
func (c *UpdateRecipeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	recipeId, err := primitive.ObjectIDFromHex(r.Req.PathValue("recipeId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid recipe ID format",
		}, http.StatusBadRequest)
	}

	var body CreateRecipeControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusUnprocessableEntity)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID format",
		}, http.StatusBadRequest)
	}

	existing, err := c.FindRecipeByIdAndUserIdRepository.Find(recipeId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding recipe",
		}, http.StatusInternalServerError)
	}

	if existing == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "recipe not found",
		}, http.StatusNotFound)
	}

	ingredients, errResponse := parseIngredients(body.Ingredients)
	if errResponse != nil {
		return errResponse
	}

	recipe, err := c.UpdateRecipeRepository.Update(recipeId, &models.Recipe{
		UserId:       userId,
		Title:        body.Title,
		Description:  body.Description,
		Instructions: body.Instructions,
		PrepMinutes:  body.PrepMinutes,
		CookMinutes:  body.CookMinutes,
		Servings:     body.Servings,
		Ingredients:  ingredients,
	})

	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when updating recipe",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(recipe, http.StatusOK)
}
