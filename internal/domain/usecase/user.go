package usecase

import (
	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FindUserByIdRepository interface {
	Find(id primitive.ObjectID) (*models.User, error)
}
