package recipe

import (
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetRecipesController struct {
	FindRecipesByUserIdRepository usecase.FindRecipesByUserIdRepository
	FindVerifiedRecipesRepository usecase.FindVerifiedRecipesRepository
}

func NewGetRecipesController(
	findRecipesByUserId usecase.FindRecipesByUserIdRepository,
	findVerifiedRecipes usecase.FindVerifiedRecipesRepository,
) *GetRecipesController {
	return &GetRecipesController{
		FindRecipesByUserIdRepository: findRecipesByUserId,
		FindVerifiedRecipesRepository: findVerifiedRecipes,
	}
}

// Handle lists the caller's recipes, or the shared verified catalog
// when ?verified=true is passed.
func (c *GetRecipesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	if r.UrlParams.Get("verified") == "true" {
		recipes, err := c.FindVerifiedRecipesRepository.FindVerified()
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when retrieving recipes",
			}, http.StatusInternalServerError)
		}
		return helpers.CreateResponse(recipes, http.StatusOK)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID format",
		}, http.StatusBadRequest)
	}

	recipes, err := c.FindRecipesByUserIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving recipes",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(recipes, http.StatusOK)
}
