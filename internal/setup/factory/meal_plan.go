package factory

import (
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/repositories/meal_plan_repository"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/repositories/recipe_repository"
	controllers "github.com/flavourly/flavourly-backend/internal/presentation/controllers/meal_plan"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateMealPlanController(db *mongo.Database) *controllers.CreateMealPlanController {
	createMealPlan := meal_plan_repository.NewCreateMealPlanRepository(db)
	return controllers.NewCreateMealPlanController(createMealPlan)
}

func MakeGetMealPlansController(db *mongo.Database) *controllers.GetMealPlansController {
	findMealPlans := meal_plan_repository.NewFindMealPlansByUserIdRepository(db)
	return controllers.NewGetMealPlansController(findMealPlans)
}

func MakeGetMealPlanByIdController(db *mongo.Database) *controllers.GetMealPlanByIdController {
	findMealPlanByIdAndUserId := meal_plan_repository.NewFindMealPlanByIdAndUserIdRepository(db)
	return controllers.NewGetMealPlanByIdController(findMealPlanByIdAndUserId)
}

func MakeUpdateMealPlanController(db *mongo.Database) *controllers.UpdateMealPlanController {
	findMealPlanByIdAndUserId := meal_plan_repository.NewFindMealPlanByIdAndUserIdRepository(db)
	updateMealPlan := meal_plan_repository.NewUpdateMealPlanRepository(db)
	return controllers.NewUpdateMealPlanController(findMealPlanByIdAndUserId, updateMealPlan)
}

func MakeDeleteMealPlanController(db *mongo.Database) *controllers.DeleteMealPlanController {
	deleteMealPlan := meal_plan_repository.NewDeleteMealPlanRepository(db)
	return controllers.NewDeleteMealPlanController(deleteMealPlan)
}

func MakeAddMealPlanEntryController(db *mongo.Database) *controllers.AddMealPlanEntryController {
	findRecipeById := recipe_repository.NewFindRecipeByIdRepository(db)
	addEntry := meal_plan_repository.NewAddMealPlanEntryRepository(db)
	return controllers.NewAddMealPlanEntryController(findRecipeById, addEntry)
}

func MakeRemoveMealPlanEntryController(db *mongo.Database) *controllers.RemoveMealPlanEntryController {
	removeEntry := meal_plan_repository.NewRemoveMealPlanEntryRepository(db)
	return controllers.NewRemoveMealPlanEntryController(removeEntry)
}
