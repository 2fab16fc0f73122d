package shopping_list

import (
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetShoppingListsController struct {
	FindShoppingListsByUserIdRepository usecase.FindShoppingListsByUserIdRepository
}

func NewGetShoppingListsController(findShoppingListsByUserId usecase.FindShoppingListsByUserIdRepository) *GetShoppingListsController {
	return &GetShoppingListsController{
		FindShoppingListsByUserIdRepository: findShoppingListsByUserId,
	}
}

func (c *GetShoppingListsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID format",
		}, http.StatusBadRequest)
	}

	shoppingLists, err := c.FindShoppingListsByUserIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving shopping lists",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(shoppingLists, http.StatusOK)
}
