package meal_plan

import (
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteMealPlanController struct {
	DeleteMealPlanRepository usecase.DeleteMealPlanRepository
}

func NewDeleteMealPlanController(deleteMealPlan usecase.DeleteMealPlanRepository) *DeleteMealPlanController {
	return &DeleteMealPlanController{
		DeleteMealPlanRepository: deleteMealPlan,
	}
}

// Handle removes a plan. Shopping lists generated from it are kept,
// they are standalone snapshots.
func (c *DeleteMealPlanController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	planId, err := primitive.ObjectIDFromHex(r.Req.PathValue("planId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid meal plan ID format",
		}, http.StatusBadRequest)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID format",
		}, http.StatusBadRequest)
	}

	err = c.DeleteMealPlanRepository.Delete(planId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting meal plan: " + err.Error(),
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(nil, http.StatusNoContent)
}
