package recipe

import (
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetRecipeByIdController struct {
	FindRecipeByIdRepository usecase.FindRecipeByIdRepository
}

func NewGetRecipeByIdController(findRecipeById usecase.FindRecipeByIdRepository) *GetRecipeByIdController {
	return &GetRecipeByIdController{
		FindRecipeByIdRepository: findRecipeById,
	}
}

// Handle returns any recipe the caller can see: their own, or someone
// else's when it has been verified.
func (c *GetRecipeByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	recipeId, err := primitive.ObjectIDFromHex(r.Req.PathValue("recipeId"))
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

	return helpers.CreateResponse(recipe, http.StatusOK)
}
