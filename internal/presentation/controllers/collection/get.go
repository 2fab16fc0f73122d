package collection

import (
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetCollectionsController struct {
	FindCollectionsByUserIdRepository usecase.FindCollectionsByUserIdRepository
}

func NewGetCollectionsController(findCollections usecase.FindCollectionsByUserIdRepository) *GetCollectionsController {
	return &GetCollectionsController{
		FindCollectionsByUserIdRepository: findCollections,
	}
}

func (c *GetCollectionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID format",
		}, http.StatusBadRequest)
	}

	collections, err := c.FindCollectionsByUserIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving collections",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(collections, http.StatusOK)
}
