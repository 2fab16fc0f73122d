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

type CreateMealPlanController struct {
	Validate                 *validator.Validate
	CreateMealPlanRepository usecase.CreateMealPlanRepository
}

func NewCreateMealPlanController(createMealPlan usecase.CreateMealPlanRepository) *CreateMealPlanController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateMealPlanController{
		Validate:                 validate,
		CreateMealPlanRepository: createMealPlan,
	}
}

type CreateMealPlanControllerBody struct {
	PlanName  string `json:"planName" validate:"required,min=1,max=255"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

func (c *CreateMealPlanController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	startDate, _ := time.ParseInLocation("2006-01-02", body.StartDate, time.UTC)
	endDate, _ := time.ParseInLocation("2006-01-02", body.EndDate, time.UTC)
	if endDate.Before(startDate) {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "endDate must not be before startDate",
		}, http.StatusBadRequest)
	}

	mealPlan, err := c.CreateMealPlanRepository.Create(&models.MealPlan{
		UserId:    userId,
		PlanName:  body.PlanName,
		StartDate: startDate,
		EndDate:   endDate,
		Entries:   []models.MealPlanEntry{},
	})

	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating meal plan",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(mealPlan, http.StatusCreated)
}
