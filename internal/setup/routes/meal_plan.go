package routes

import (
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/setup/adapters"
	"github.com/flavourly/flavourly-backend/internal/setup/factory"
	"github.com/flavourly/flavourly-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func MealPlanRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /meal-plan", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateMealPlanController(db)),
	))

	server.Handle("GET /meal-plan", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetMealPlansController(db)),
	))

	server.Handle("GET /meal-plan/{planId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetMealPlanByIdController(db)),
	))

	server.Handle("PUT /meal-plan/{planId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateMealPlanController(db)),
	))

	server.Handle("DELETE /meal-plan/{planId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteMealPlanController(db)),
	))

	server.Handle("POST /meal-plan/{planId}/entry", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeAddMealPlanEntryController(db)),
	))

	server.Handle("DELETE /meal-plan/{planId}/entry/{entryIndex}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeRemoveMealPlanEntryController(db)),
	))
}
