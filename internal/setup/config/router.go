package config

import (
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/setup/routes"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(server *http.ServeMux, db *mongo.Database) {
	apiServer := http.NewServeMux()
	routes.RecipeRoutes(apiServer, db)
	routes.MealPlanRoutes(apiServer, db)
	routes.ShoppingListRoutes(apiServer, db)
	routes.CollectionRoutes(apiServer, db)

	server.Handle("/api/", http.StripPrefix("/api", apiServer))
}
