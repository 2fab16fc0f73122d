package collection

import (
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AddRecipeToCollectionController struct {
	FindRecipeByIdRepository        usecase.FindRecipeByIdRepository
	AddRecipeToCollectionRepository usecase.AddRecipeToCollectionRepository
}

func NewAddRecipeToCollectionController(
	findRecipeById usecase.FindRecipeByIdRepository,
	addRecipe usecase.AddRecipeToCollectionRepository,
) *AddRecipeToCollectionController {
	return &AddRecipeToCollectionController{
		FindRecipeByIdRepository:        findRecipeById,
		AddRecipeToCollectionRepository: addRecipe,
	}
}

// Handle adds a recipe to a collection. Adding the same recipe twice is
// a no-op, the stored set is deduplicated.
func (c *AddRecipeToCollectionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	collectionId, err := primitive.ObjectIDFromHex(r.Req.PathValue("collectionId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid collection ID format",
		}, http.StatusBadRequest)
	}

	recipeId, err := primitive.ObjectIDFromHex(r.Req.PathValue("recipeId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid recipe ID format",
		}, http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID format",
		}, http.StatusBadRequest)
	}

	recipe, err := c.FindRecipeByIdRepository.Find(recipeId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding recipe",
		}, http.StatusInternalServerError)
	}

	if recipe == nil || (recipe.UserId != userId && !recipe.IsVerified()) {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "recipe not found",
		}, http.StatusNotFound)
	}

	collection, err := c.AddRecipeToCollectionRepository.AddRecipe(collectionId, userId, recipeId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when adding recipe to collection",
		}, http.StatusInternalServerError)
	}

	if collection == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "collection not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(collection, http.StatusOK)
}

type RemoveRecipeFromCollectionController struct {
	RemoveRecipeFromCollectionRepository usecase.RemoveRecipeFromCollectionRepository
}

func NewRemoveRecipeFromCollectionController(removeRecipe usecase.RemoveRecipeFromCollectionRepository) *RemoveRecipeFromCollectionController {
	return &RemoveRecipeFromCollectionController{
		RemoveRecipeFromCollectionRepository: removeRecipe,
	}
}

func (c *RemoveRecipeFromCollectionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	collectionId, err := primitive.ObjectIDFromHex(r.Req.PathValue("collectionId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid collection ID format",
		}, http.StatusBadRequest)
	}

	recipeId, err := primitive.ObjectIDFromHex(r.Req.PathValue("recipeId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid recipe ID format",
		}, http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID format",
		}, http.StatusBadRequest)
	}

	collection, err := c.RemoveRecipeFromCollectionRepository.RemoveRecipe(collectionId, userId, recipeId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when removing recipe from collection",
		}, http.StatusInternalServerError)
	}

	if collection == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "collection not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(collection, http.StatusOK)
}
