package meal_plan

import (
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetMealPlanByIdController struct {
	FindMealPlanByIdAndUserIdRepository usecase.FindMealPlanByIdAndUserIdRepository
}

func NewGetMealPlanByIdController(findMealPlanByIdAndUserId usecase.FindMealPlanByIdAndUserIdRepository) *GetMealPlanByIdController {
	return &GetMealPlanByIdController{
		FindMealPlanByIdAndUserIdRepository: findMealPlanByIdAndUserId,
	}
}

func (c *GetMealPlanByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	mealPlan, err := c.FindMealPlanByIdAndUserIdRepository.Find(planId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding meal plan",
		}, http.StatusInternalServerError)
	}

	if mealPlan == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "meal plan not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(mealPlan, http.StatusOK)
}
