package shopping_list

import (
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteShoppingListController struct {
	DeleteShoppingListRepository usecase.DeleteShoppingListRepository
}

func NewDeleteShoppingListController(deleteShoppingList usecase.DeleteShoppingListRepository) *DeleteShoppingListController {
	return &DeleteShoppingListController{
		DeleteShoppingListRepository: deleteShoppingList,
	}
}

func (c *DeleteShoppingListController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	err = c.DeleteShoppingListRepository.Delete(listId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting shopping list: " + err.Error(),
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
