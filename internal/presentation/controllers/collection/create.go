package collection

import (
	"encoding/json"
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateCollectionController struct {
	Validate                   *validator.Validate
	CreateCollectionRepository usecase.CreateCollectionRepository
}

func NewCreateCollectionController(createCollection usecase.CreateCollectionRepository) *CreateCollectionController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateCollectionController{
		Validate:                   validate,
		CreateCollectionRepository: createCollection,
	}
}

type CreateCollectionControllerBody struct {
	CollectionName string  `json:"collectionName" validate:"required,min=1,max=255"`
	Description    *string `json:"description" validate:"omitempty,max=2000"`
}

func (c *CreateCollectionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateCollectionControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusUnprocessableEntity)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID format",
		}, http.StatusBadRequest)
	}

	collection, err := c.CreateCollectionRepository.Create(&models.Collection{
		UserId:         userId,
		CollectionName: body.CollectionName,
		Description:    body.Description,
		RecipeIds:      []primitive.ObjectID{},
	})

	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating collection",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(collection, http.StatusCreated)
}
