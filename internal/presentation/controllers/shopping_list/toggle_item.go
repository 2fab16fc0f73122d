package shopping_list

import (
	"encoding/json"
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ToggleShoppingListItemController struct {
	ToggleShoppingListItemRepository usecase.ToggleShoppingListItemRepository
}

func NewToggleShoppingListItemController(toggleItem usecase.ToggleShoppingListItemRepository) *ToggleShoppingListItemController {
	return &ToggleShoppingListItemController{
		ToggleShoppingListItemRepository: toggleItem,
	}
}

type ToggleShoppingListItemControllerBody struct {
	IsCompleted *bool `json:"isCompleted"`
}

// Handle flips the completed flag on one item. Quantities, names and
// units are never recomputed here.
func (c *ToggleShoppingListItemController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	listId, err := primitive.ObjectIDFromHex(r.Req.PathValue("listId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid shopping list ID format",
		}, http.StatusBadRequest)
	}

	itemId, err := primitive.ObjectIDFromHex(r.Req.PathValue("itemId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid item ID format",
		}, http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID format",
		}, http.StatusBadRequest)
	}

	var body ToggleShoppingListItemControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if body.IsCompleted == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "isCompleted is required",
		}, http.StatusBadRequest)
	}

	item, err := c.ToggleShoppingListItemRepository.ToggleItem(listId, userId, itemId, *body.IsCompleted)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when updating shopping list item",
		}, http.StatusInternalServerError)
	}

	if item == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "shopping list item not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(item, http.StatusOK)
}
