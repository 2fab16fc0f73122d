package middlewares

import (
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/repositories/user_repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IsNutritionist gates verification routes. Runs after VerifyAccessToken,
// so the UserId header is already trustworthy.
func IsNutritionist(next http.Handler, db *mongo.Database) http.Handler {
	findUserById := user_repository.NewFindUserByIdRepository(db)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
		if err != nil {
			http.Error(w, "Invalid user ID", http.StatusBadRequest)
			return
		}

		user, err := findUserById.Find(userId)
		if err != nil {
			http.Error(w, "Error loading user", http.StatusInternalServerError)
			return
		}

		if user == nil || user.Role != models.RoleNutritionist {
			http.Error(w, "User is not a nutritionist", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
