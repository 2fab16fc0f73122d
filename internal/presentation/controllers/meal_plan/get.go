package meal_plan

import (
	"net/http"

	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetMealPlansController struct {
	FindMealPlansByUserIdRepository usecase.FindMealPlansByUserIdRepository
}

func NewGetMealPlansController(findMealPlans usecase.FindMealPlansByUserIdRepository) *GetMealPlansController {
	return &GetMealPlansController{
		FindMealPlansByUserIdRepository: findMealPlans,
	}
}

func (c *GetMealPlansController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID format",
		}, http.StatusBadRequest)
	}

	mealPlans, err := c.FindMealPlansByUserIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving meal plans",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(mealPlans, http.StatusOK)
}
