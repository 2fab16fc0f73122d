package routes

import (
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/setup/adapters"
	"github.com/flavourly/flavourly-backend/internal/setup/factory"
	"github.com/flavourly/flavourly-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func CollectionRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /collection", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateCollectionController(db)),
	))

	server.Handle("GET /collection", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetCollectionsController(db)),
	))

	server.Handle("GET /collection/{collectionId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetCollectionByIdController(db)),
	))

	server.Handle("DELETE /collection/{collectionId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteCollectionController(db)),
	))

	server.Handle("POST /collection/{collectionId}/recipe/{recipeId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeAddRecipeToCollectionController(db)),
	))

	server.Handle("DELETE /collection/{collectionId}/recipe/{recipeId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeRemoveRecipeFromCollectionController(db)),
	))
}
