package routes

import (
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/setup/adapters"
	"github.com/flavourly/flavourly-backend/internal/setup/factory"
	"github.com/flavourly/flavourly-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func RecipeRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /recipe", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateRecipeController(db)),
	))

	server.Handle("GET /recipe", middlewares.VerifyAccessToken(
		middlewares.AllowCacheHeader(
			adapters.AdaptRoute(factory.MakeGetRecipesController(db)),
		),
	))

	server.Handle("GET /recipe/{recipeId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetRecipeByIdController(db)),
	))

	server.Handle("PUT /recipe/{recipeId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateRecipeController(db)),
	))

	server.Handle("DELETE /recipe/{recipeId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteRecipeController(db)),
	))

	server.Handle("PATCH /recipe/{recipeId}/verify", middlewares.VerifyAccessToken(
		middlewares.IsNutritionist(
			adapters.AdaptRoute(factory.MakeVerifyRecipeController(db)),
			db,
		),
	))

	server.Handle("POST /recipe/import", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeImportRecipesController(db)),
	))
}
