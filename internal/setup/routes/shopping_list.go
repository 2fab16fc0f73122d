package routes

import (
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/setup/adapters"
	"github.com/flavourly/flavourly-backend/internal/setup/factory"
	"github.com/flavourly/flavourly-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func ShoppingListRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /shopping-list/generate", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGenerateShoppingListController(db)),
	))

	server.Handle("GET /shopping-list", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetShoppingListsController(db)),
	))

	server.Handle("GET /shopping-list/{listId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetShoppingListByIdController(db)),
	))

	server.Handle("PUT /shopping-list/{listId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateShoppingListController(db)),
	))

	server.Handle("PATCH /shopping-list/{listId}/item/{itemId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeToggleShoppingListItemController(db)),
	))

	server.Handle("DELETE /shopping-list/{listId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteShoppingListController(db)),
	))

	server.Handle("GET /shopping-list/{listId}/export", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeExportShoppingListController(db)),
	))
}
