package meal_plan

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/flavourly/flavourly-backend/internal/domain/models"
	"github.com/flavourly/flavourly-backend/internal/domain/usecase"
	"github.com/flavourly/flavourly-backend/internal/presentation/helpers"
	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateMealPlanController struct {
	Validate                            *validator.Validate
	FindMealPlanByIdAndUserIdRepository usecase.FindMealPlanByIdAndUserIdRepository
	UpdateMealPlanRepository            usecase.UpdateMealPlanRepository
}

func NewUpdateMealPlanController(
	findMealPlanByIdAndUserId usecase.FindMealPlanByIdAndUserIdRepository,
	updateMealPlan usecase.UpdateMealPlanRepository,
) *UpdateMealPlanController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateMealPlanController{
		Validate:                            validate,
		FindMealPlanByIdAndUserIdRepository: findMealPlanByIdAndUserId,
		UpdateMealPlanRepository:            updateMealPlan,
	}
}

// Handle renames a plan or moves its date window. Entries are managed
// through their own routes.
func (c *UpdateMealPlanController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	planId, err := primitive.ObjectIDFromHex(r.Req.PathValue("planId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid meal plan ID format",
		}, http.StatusBadRequest)
	}

	var body CreateMealPlanControllerBody
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

	existing, err := c.FindMealPlanByIdAndUserIdRepository.Find(planId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding meal plan",
		}, http.StatusInternalServerError)
	}

	if existing == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "meal plan not found",
		}, http.StatusNotFound)
	}

	startDate, _ := time.ParseInLocation("2006-01-02", body.StartDate, time.UTC)
	endDate, _ := time.ParseInLocation("2006-01-02", body.EndDate, time.UTC)
	if endDate.Before(startDate) {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "endDate must not be before startDate",
		}, http.StatusBadRequest)
	}

	mealPlan, err := c.UpdateMealPlanRepository.Update(planId, &models.MealPlan{
		PlanName:  body.PlanName,
		StartDate: startDate,
		EndDate:   endDate,
	})

	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when updating meal plan",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(mealPlan, http.StatusOK)
}
