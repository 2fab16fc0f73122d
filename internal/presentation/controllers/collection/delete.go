package collection

import (
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteCollectionController struct {
	DeleteCollectionRepository usecase.DeleteCollectionRepository
}

func NewDeleteCollectionController(deleteCollection usecase.DeleteCollectionRepository) *DeleteCollectionController {
	return &DeleteCollectionController{
		DeleteCollectionRepository: deleteCollection,
	}
}

// Handle removes a collection. The recipes it references are untouched.
func (c *DeleteCollectionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	err = c.DeleteCollectionRepository.Delete(collectionId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting collection: " + err.Error(),
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
