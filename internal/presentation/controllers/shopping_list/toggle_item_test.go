package shopping_list

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubToggleItem struct {
	list *models.ShoppingList
}

func (s *stubToggleItem) ToggleItem(listId primitive.ObjectID, userId primitive.ObjectID, itemId primitive.ObjectID, isCompleted bool) (*models.ShoppingListItem, error) {
	if s.list == nil || s.list.Id != listId || s.list.UserId != userId {
		return nil, nil
	}
	for i := range s.list.Items {
		if s.list.Items[i].Id == itemId {
			s.list.Items[i].IsCompleted = isCompleted
			return &s.list.Items[i], nil
		}
	}
	return nil, nil
}

func toggleRequest(t *testing.T, userId primitive.ObjectID, listId, itemId string, body string) presentationProtocols.HttpRequest {
	t.Helper()

	target := fmt.Sprintf("/shopping-list/%s/item/%s", listId, itemId)
	req := httptest.NewRequest(http.MethodPatch, target, bytes.NewBufferString(body))
	req.Header.Set("UserId", userId.Hex())
	req.SetPathValue("listId", listId)
	req.SetPathValue("itemId", itemId)

	return presentationProtocols.HttpRequest{
		Body:   io.NopCloser(bytes.NewBufferString(body)),
		Header: req.Header,
		Req:    req,
	}
}

func fixtureList(userId primitive.ObjectID) *models.ShoppingList {
	flour, _ := models.NewDecimalFromString("2.5")
	sugar, _ := models.NewDecimalFromString("200")
	cup := "cup"
	g := "g"

	return &models.ShoppingList{
		Id:     primitive.NewObjectID(),
		UserId: userId,
		Items: []models.ShoppingListItem{
			{Id: primitive.NewObjectID(), ItemName: "flour", Quantity: flour, Unit: &cup, SortOrder: 0},
			{Id: primitive.NewObjectID(), ItemName: "sugar", Quantity: sugar, Unit: &g, SortOrder: 1},
		},
	}
}

func TestToggleItemUpdatesOnlyCompletion(t *testing.T) {
	userId := primitive.NewObjectID()
	list := fixtureList(userId)

	controller := NewToggleShoppingListItemController(&stubToggleItem{list: list})

	res := controller.Handle(toggleRequest(t, userId, list.Id.Hex(), list.Items[0].Id.Hex(), `{"isCompleted":true}`))
	require.Equal(t, http.StatusOK, res.StatusCode)

	item := decodeBody[models.ShoppingListItem](t, res)
	assert.True(t, item.IsCompleted)
	assert.Equal(t, "flour", item.ItemName)
	assert.Equal(t, "2.5", item.Quantity.String())
	assert.Equal(t, "cup", *item.Unit)

	// the sibling item is untouched
	assert.False(t, list.Items[1].IsCompleted)
	assert.Equal(t, "200", list.Items[1].Quantity.String())
}

func TestToggleItemRequiresIsCompleted(t *testing.T) {
	userId := primitive.NewObjectID()
	list := fixtureList(userId)

	controller := NewToggleShoppingListItemController(&stubToggleItem{list: list})

	res := controller.Handle(toggleRequest(t, userId, list.Id.Hex(), list.Items[0].Id.Hex(), `{}`))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestToggleItemNotFoundForOtherUsersList(t *testing.T) {
	owner := primitive.NewObjectID()
	list := fixtureList(owner)

	controller := NewToggleShoppingListItemController(&stubToggleItem{list: list})

	res := controller.Handle(toggleRequest(t, primitive.NewObjectID(), list.Id.Hex(), list.Items[0].Id.Hex(), `{"isCompleted":true}`))
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestToggleItemNotFoundForUnknownItem(t *testing.T) {
	userId := primitive.NewObjectID()
	list := fixtureList(userId)

	controller := NewToggleShoppingListItemController(&stubToggleItem{list: list})

	res := controller.Handle(toggleRequest(t, userId, list.Id.Hex(), primitive.NewObjectID().Hex(), `{"isCompleted":false}`))
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
