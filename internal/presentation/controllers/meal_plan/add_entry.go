package meal_plan

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

type AddMealPlanEntryController struct {
	Validate                   *validator.Validate
	FindRecipeByIdRepository   usecase.FindRecipeByIdRepository
	AddMealPlanEntryRepository usecase.AddMealPlanEntryRepository
}

func NewAddMealPlanEntryController(
	findRecipeById usecase.FindRecipeByIdRepository,
	addMealPlanEntry usecase.AddMealPlanEntryRepository,
) *AddMealPlanEntryController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &AddMealPlanEntryController{
		Validate:                   validate,
		FindRecipeByIdRepository:   findRecipeById,
		AddMealPlanEntryRepository: addMealPlanEntry,
	}
}

type AddMealPlanEntryControllerBody struct {
	RecipeId          string `json:"recipeId" validate:"required"`
	ServingsToPrepare int    `json:"servingsToPrepare" validate:"required,min=1"`
	MealDate          string `json:"mealDate" validate:"required,datetime=2006-01-02"`
	MealType          string `json:"mealType" validate:"required,oneof=BREAKFAST LUNCH DINNER SNACK"`
}

func (c *AddMealPlanEntryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	planId, err := primitive.ObjectIDFromHex(r.Req.PathValue("planId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid meal plan ID format",
		}, http.StatusBadRequest)
	}

	var body AddMealPlanEntryControllerBody
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

	recipeId, err := primitive.ObjectIDFromHex(body.RecipeId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid recipe ID format",
		}, http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID format",
		}, http.StatusBadRequest)
	}

	recipe, err := c.FindRecipeByIdRepository.Find(recipeId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding recipe",
		}, http.StatusInternalServerError)
	}

	if recipe == nil || (recipe.UserId != userId && !recipe.IsVerified()) {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "recipe not found",
		}, http.StatusNotFound)
	}

	mealDate, _ := time.ParseInLocation("2006-01-02", body.MealDate, time.UTC)

	mealPlan, err := c.AddMealPlanEntryRepository.AddEntry(planId, userId, &models.MealPlanEntry{
		RecipeId:          recipeId,
		ServingsToPrepare: body.ServingsToPrepare,
		MealDate:          mealDate,
		MealType:          body.MealType,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when adding meal plan entry",
		}, http.StatusInternalServerError)
	}

	if mealPlan == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "meal plan not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(mealPlan, http.StatusCreated)
}
