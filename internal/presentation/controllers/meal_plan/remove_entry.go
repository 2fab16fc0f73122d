package meal_plan

import (
	"net/http"
	"strconv"

	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RemoveMealPlanEntryController struct {
	RemoveMealPlanEntryRepository usecase.RemoveMealPlanEntryRepository
}

func NewRemoveMealPlanEntryController(removeMealPlanEntry usecase.RemoveMealPlanEntryRepository) *RemoveMealPlanEntryController {
	return &RemoveMealPlanEntryController{
		RemoveMealPlanEntryRepository: removeMealPlanEntry,
	}
}

// Handle removes the entry at the given position in the plan.
func (c *RemoveMealPlanEntryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	planId, err := primitive.ObjectIDFromHex(r.Req.PathValue("planId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid meal plan ID format",
		}, http.StatusBadRequest)
	}

	entryIndex, err := strconv.Atoi(r.Req.PathValue("entryIndex"))
	if err != nil || entryIndex < 0 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid entry index",
		}, http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID format",
		}, http.StatusBadRequest)
	}

	mealPlan, err := c.RemoveMealPlanEntryRepository.RemoveEntry(planId, userId, entryIndex)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when removing meal plan entry",
		}, http.StatusInternalServerError)
	}

	if mealPlan == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "meal plan entry not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(mealPlan, http.StatusOK)
}
