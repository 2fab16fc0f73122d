package shopping_list

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

type UpdateShoppingListController struct {
	Validate                      *validator.Validate
	ReplaceShoppingListRepository usecase.ReplaceShoppingListRepository
}

func NewUpdateShoppingListController(replaceShoppingList usecase.ReplaceShoppingListRepository) *UpdateShoppingListController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateShoppingListController{
		Validate:                      validate,
		ReplaceShoppingListRepository: replaceShoppingList,
	}
}

type UpdateShoppingListControllerItem struct {
	ItemName    string  `json:"itemName" validate:"required,max=255"`
	Quantity    string  `json:"quantity" validate:"required"`
	Unit        *string `json:"unit"`
	Notes       *string `json:"notes"`
	IsCompleted bool    `json:"isCompleted"`
}

type UpdateShoppingListControllerBody struct {
	ListName string                             `json:"listName" validate:"required,min=1,max=255"`
	Items    []UpdateShoppingListControllerItem `json:"items" validate:"required,dive"`
}

// Handle is the edit-mode full replace: the supplied array becomes the
// entire item set, old items are discarded and item ids are not
// preserved.
func (c *UpdateShoppingListController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	var body UpdateShoppingListControllerBody
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

	items := make([]models.ShoppingListItem, len(body.Items))
	for i, item := range body.Items {
		quantity, err := models.NewDecimalFromString(item.Quantity)
		if err != nil || quantity.IsNegative() {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid quantity for item: " + item.ItemName,
			}, http.StatusBadRequest)
		}

		items[i] = models.ShoppingListItem{
			ItemName:    item.ItemName,
			Quantity:    quantity,
			Unit:        item.Unit,
			Notes:       item.Notes,
			IsCompleted: item.IsCompleted,
		}
	}

	shoppingList, err := c.ReplaceShoppingListRepository.Replace(listId, userId, body.ListName, items)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when updating shopping list",
		}, http.StatusInternalServerError)
	}

	if shoppingList == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "shopping list not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(shoppingList, http.StatusOK)
}
