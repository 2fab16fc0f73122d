package shopping_list

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubReplaceShoppingList struct {
	list *models.ShoppingList
}

func (s *stubReplaceShoppingList) Replace(id primitive.ObjectID, userId primitive.ObjectID, listName string, items []models.ShoppingListItem) (*models.ShoppingList, error) {
	if s.list == nil || s.list.Id != id || s.list.UserId != userId {
		return nil, nil
	}

	for i := range items {
		items[i].Id = primitive.NewObjectID()
		items[i].SortOrder = i
	}

	s.list.ListName = listName
	s.list.Items = items
	s.list.UpdatedAt = time.Now().UTC()

	return s.list, nil
}

func replaceRequest(t *testing.T, userId primitive.ObjectID, listId string, body string) presentationProtocols.HttpRequest {
	t.Helper()

	req := httptest.NewRequest(http.MethodPut, "/shopping-list/"+listId, bytes.NewBufferString(body))
	req.Header.Set("UserId", userId.Hex())
	req.SetPathValue("listId", listId)

	return presentationProtocols.HttpRequest{
		Body:   io.NopCloser(bytes.NewBufferString(body)),
		Header: req.Header,
		Req:    req,
	}
}

func TestUpdateShoppingListReplacesItemSet(t *testing.T) {
	userId := primitive.NewObjectID()
	list := fixtureList(userId)
	originalFirstItemId := list.Items[0].Id

	controller := NewUpdateShoppingListController(&stubReplaceShoppingList{list: list})

	body := `{"listName":"Weekend list","items":[{"itemName":"flour","quantity":"2.5","unit":"cup"}]}`
	res := controller.Handle(replaceRequest(t, userId, list.Id.Hex(), body))
	require.Equal(t, http.StatusOK, res.StatusCode)

	updated := decodeBody[models.ShoppingList](t, res)
	assert.Equal(t, "Weekend list", updated.ListName)
	require.Len(t, updated.Items, 1, "items outside the replacement array are discarded")
	assert.Equal(t, "flour", updated.Items[0].ItemName)
	assert.Equal(t, 0, updated.Items[0].SortOrder)
	assert.NotEqual(t, originalFirstItemId, updated.Items[0].Id, "item ids are not preserved across a replace")
}

func TestUpdateShoppingListAllowsEmptyItems(t *testing.T) {
	userId := primitive.NewObjectID()
	list := fixtureList(userId)

	controller := NewUpdateShoppingListController(&stubReplaceShoppingList{list: list})

	res := controller.Handle(replaceRequest(t, userId, list.Id.Hex(), `{"listName":"Cleared","items":[]}`))
	require.Equal(t, http.StatusOK, res.StatusCode)

	updated := decodeBody[models.ShoppingList](t, res)
	assert.Empty(t, updated.Items)
}

func TestUpdateShoppingListRejectsInvalidQuantity(t *testing.T) {
	userId := primitive.NewObjectID()
	list := fixtureList(userId)

	controller := NewUpdateShoppingListController(&stubReplaceShoppingList{list: list})

	body := `{"listName":"Broken","items":[{"itemName":"flour","quantity":"lots"}]}`
	res := controller.Handle(replaceRequest(t, userId, list.Id.Hex(), body))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	negative := `{"listName":"Broken","items":[{"itemName":"flour","quantity":"-1"}]}`
	res = controller.Handle(replaceRequest(t, userId, list.Id.Hex(), negative))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestUpdateShoppingListNotFoundForOtherUsersList(t *testing.T) {
	owner := primitive.NewObjectID()
	list := fixtureList(owner)

	controller := NewUpdateShoppingListController(&stubReplaceShoppingList{list: list})

	body := `{"listName":"Stolen","items":[]}`
	res := controller.Handle(replaceRequest(t, primitive.NewObjectID(), list.Id.Hex(), body))
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
