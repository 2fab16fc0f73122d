package collection

import (
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetCollectionByIdController struct {
	FindCollectionByIdAndUserIdRepository usecase.FindCollectionByIdAndUserIdRepository
}

func NewGetCollectionByIdController(findCollectionByIdAndUserId usecase.FindCollectionByIdAndUserIdRepository) *GetCollectionByIdController {
	return &GetCollectionByIdController{
		FindCollectionByIdAndUserIdRepository: findCollectionByIdAndUserId,
	}
}

func (c *GetCollectionByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	collectionId, err := primitive.ObjectIDFromHex(r.Req.PathValue("collectionId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid collection ID format",
		}, http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID format",
		}, http.StatusBadRequest)
	}

	collection, err := c.FindCollectionByIdAndUserIdRepository.Find(collectionId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding collection",
		}, http.StatusInternalServerError)
	}

	if collection == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "collection not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(collection, http.StatusOK)
}
