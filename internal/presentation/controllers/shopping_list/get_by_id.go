package shopping_list

import (
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetShoppingListByIdController struct {
	FindShoppingListByIdAndUserIdRepository usecase.FindShoppingListByIdAndUserIdRepository
}

func NewGetShoppingListByIdController(findShoppingListByIdAndUserId usecase.FindShoppingListByIdAndUserIdRepository) *GetShoppingListByIdController {
	return &GetShoppingListByIdController{
		FindShoppingListByIdAndUserIdRepository: findShoppingListByIdAndUserId,
	}
}

func (c *GetShoppingListByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	listId, err := primitive.ObjectIDFromHex(r.Req.PathValue("listId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid shopping list ID format",
		}, http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID format",
		}, http.StatusBadRequest)
	}

	shoppingList, err := c.FindShoppingListByIdAndUserIdRepository.Find(listId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding shopping list",
		}, http.StatusInternalServerError)
	}

	if shoppingList == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "shopping list not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(shoppingList, http.StatusOK)
}
