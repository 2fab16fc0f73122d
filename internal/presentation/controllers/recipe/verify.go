package recipe

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VerifyRecipeController struct {
	Validate               *validator.Validate
	VerifyRecipeRepository usecase.VerifyRecipeRepository
}

func NewVerifyRecipeController(verifyRecipe usecase.VerifyRecipeRepository) *VerifyRecipeController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &VerifyRecipeController{
		Validate:               validate,
		VerifyRecipeRepository: verifyRecipe,
	}
}

type VerifyRecipeControllerBody struct {
	Status string  `json:"status" validate:"required,oneof=VERIFIED REJECTED"`
	Notes  *string `json:"notes" validate:"omitempty,max=2000"`
}

// Handle records a nutritionist's decision on a recipe. The route is
// restricted to nutritionists by middleware, so only the recipe lookup
// can fail here.
func (c *VerifyRecipeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	recipeId, err := primitive.ObjectIDFromHex(r.Req.PathValue("recipeId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid recipe ID format",
		}, http.StatusBadRequest)
	}

	var body VerifyRecipeControllerBody
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

	recipe, err := c.VerifyRecipeRepository.Verify(recipeId, &models.RecipeVerification{
		NutritionistId: userId,
		Status:         body.Status,
		Notes:          body.Notes,
		VerifiedAt:     time.Now().UTC(),
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when verifying recipe",
		}, http.StatusInternalServerError)
	}

	if recipe == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "recipe not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(recipe, http.StatusOK)
}
