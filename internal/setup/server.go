package setup

import (
	"net/http"
	"os"

	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/helpers"
	"github.com/flavourly/flavourly-backend/internal/setup/config"
)

func Server() *http.ServeMux {
	mux := http.NewServeMux()

	db := helpers.MongoHelper(os.Getenv("MONGODB_URI"), os.Getenv("MONGODB_DATABASE"))

	config.SetupRoutes(mux, db)

	return mux
}
