package shopping_list

import (
	"encoding/json"
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	infraHelpers "github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GenerateShoppingListController struct {
	Validate                            *validator.Validate
	FindMealPlanByIdAndUserIdRepository usecase.FindMealPlanByIdAndUserIdRepository
	FindRecipesByIdsRepository          usecase.FindRecipesByIdsRepository
	CreateShoppingListRepository        usecase.CreateShoppingListRepository
}

func NewGenerateShoppingListController(
	findMealPlanByIdAndUserId usecase.FindMealPlanByIdAndUserIdRepository,
	findRecipesByIds usecase.FindRecipesByIdsRepository,
	createShoppingList usecase.CreateShoppingListRepository,
) *GenerateShoppingListController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &GenerateShoppingListController{
		Validate:                            validate,
		FindMealPlanByIdAndUserIdRepository: findMealPlanByIdAndUserId,
		FindRecipesByIdsRepository:          findRecipesByIds,
		CreateShoppingListRepository:        createShoppingList,
	}
}

type GenerateShoppingListControllerBody struct {
	MealPlanId string `json:"mealPlanId" validate:"required"`
	ListName   string `json:"listName" validate:"omitempty,max=255"`
}

// Handle generates a shopping list from a meal plan: the plan and every
// referenced recipe are loaded as one snapshot, ingredient lines are
// scaled and merged in memory, and the result is persisted as a brand
// new list. Generating twice from an unchanged plan gives two lists
// with equal items and distinct ids; nothing is ever merged into an
// existing list.
func (c *GenerateShoppingListController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body GenerateShoppingListControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusBadRequest)
	}

	mealPlanId, err := primitive.ObjectIDFromHex(body.MealPlanId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid meal plan ID format",
		}, http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID format",
		}, http.StatusBadRequest)
	}

	mealPlan, err := c.FindMealPlanByIdAndUserIdRepository.Find(mealPlanId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding meal plan",
		}, http.StatusInternalServerError)
	}

	if mealPlan == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "meal plan not found",
		}, http.StatusNotFound)
	}

	recipes, err := c.FindRecipesByIdsRepository.FindByIds(mealPlan.RecipeIds())
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding recipes",
		}, http.StatusInternalServerError)
	}

	recipesById := make(map[primitive.ObjectID]models.Recipe, len(recipes))
	for _, recipe := range recipes {
		recipesById[recipe.Id] = recipe
	}

	items := infraHelpers.AggregateShoppingItems(mealPlan.Entries, recipesById)

	listName := body.ListName
	if listName == "" {
		listName = "Shopping List - " + mealPlan.PlanName
	}

	shoppingList, err := c.CreateShoppingListRepository.Create(&models.ShoppingList{
		UserId:     userId,
		ListName:   listName,
		MealPlanId: &mealPlan.Id,
		Items:      items,
	})

	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating shopping list",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(shoppingList, http.StatusCreated)
}
