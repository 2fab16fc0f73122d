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

type CreateRecipeController struct {
	Validate               *validator.Validate
	CreateRecipeRepository usecase.CreateRecipeRepository
}

func NewCreateRecipeController(createRecipe usecase.CreateRecipeRepository) *CreateRecipeController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateRecipeController{
		Validate:               validate,
		CreateRecipeRepository: createRecipe,
	}
}

type CreateRecipeControllerIngredient struct {
	IngredientName string  `json:"ingredientName" validate:"required,max=255"`
	UnitName       string  `json:"unitName" validate:"required,max=64"`
	Quantity       string  `json:"quantity" validate:"required"`
	Notes          *string `json:"notes"`
}

type CreateRecipeControllerBody struct {
	Title        string                             `json:"title" validate:"required,min=3,max=255"`
	Description  string                             `json:"description" validate:"max=2000"`
	Instructions string                             `json:"instructions" validate:"max=20000"`
	PrepMinutes  int                                `json:"prepMinutes" validate:"min=0"`
	CookMinutes  int                                `json:"cookMinutes" validate:"min=0"`
	Servings     int                                `json:"servings" validate:"required,min=1"`
	Ingredients  []CreateRecipeControllerIngredient `json:"ingredients" validate:"required,min=1,dive"`
}

func (c *CreateRecipeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	ingredients, errResponse := parseIngredients(body.Ingredients)
	if errResponse != nil {
		return errResponse
	}

	recipe, err := c.CreateRecipeRepository.Create(&models.Recipe{
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
			Error: "an error occurred when creating recipe",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(recipe, http.StatusCreated)
}

// parseIngredients converts the request lines into model lines,
// rejecting quantities that do not parse as a positive decimal.
func parseIngredients(lines []CreateRecipeControllerIngredient) ([]models.RecipeIngredient, *presentationProtocols.HttpResponse) {
	ingredients := make([]models.RecipeIngredient, len(lines))
	for i, line := range lines {
		quantity, err := models.NewDecimalFromString(line.Quantity)
		if err != nil || !quantity.IsPositive() {
			return nil, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid quantity for ingredient: " + line.IngredientName,
			}, http.StatusBadRequest)
		}

		ingredients[i] = models.RecipeIngredient{
			IngredientName: line.IngredientName,
			UnitName:       line.UnitName,
			Quantity:       quantity,
			Notes:          line.Notes,
		}
	}
	return ingredients, nil
}
