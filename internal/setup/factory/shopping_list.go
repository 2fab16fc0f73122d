package factory

import (
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/repositories/meal_plan_repository"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/repositories/recipe_repository"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/repositories/shopping_list_repository"
	controllers "github.com/flavourly/flavourly-backend/internal/presentation/controllers/shopping_list"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeGenerateShoppingListController(db *mongo.Database) *controllers.GenerateShoppingListController {
	findMealPlanByIdAndUserId := meal_plan_repository.NewFindMealPlanByIdAndUserIdRepository(db)
	findRecipesByIds := recipe_repository.NewFindRecipesByIdsRepository(db)
	createShoppingList := shopping_list_repository.NewCreateShoppingListRepository(db)
	return controllers.NewGenerateShoppingListController(findMealPlanByIdAndUserId, findRecipesByIds, createShoppingList)
}

func MakeGetShoppingListsController(db *mongo.Database) *controllers.GetShoppingListsController {
	findShoppingLists := shopping_list_repository.NewFindShoppingListsByUserIdRepository(db)
	return controllers.NewGetShoppingListsController(findShoppingLists)
}

func MakeGetShoppingListByIdController(db *mongo.Database) *controllers.GetShoppingListByIdController {
	findShoppingListByIdAndUserId := shopping_list_repository.NewFindShoppingListByIdAndUserIdRepository(db)
	return controllers.NewGetShoppingListByIdController(findShoppingListByIdAndUserId)
}

func MakeUpdateShoppingListController(db *mongo.Database) *controllers.UpdateShoppingListController {
	replaceShoppingList := shopping_list_repository.NewReplaceShoppingListRepository(db)
	return controllers.NewUpdateShoppingListController(replaceShoppingList)
}

func MakeToggleShoppingListItemController(db *mongo.Database) *controllers.ToggleShoppingListItemController {
	toggleItem := shopping_list_repository.NewToggleShoppingListItemRepository(db)
	return controllers.NewToggleShoppingListItemController(toggleItem)
}

func MakeDeleteShoppingListController(db *mongo.Database) *controllers.DeleteShoppingListController {
	deleteShoppingList := shopping_list_repository.NewDeleteShoppingListRepository(db)
	return controllers.NewDeleteShoppingListController(deleteShoppingList)
}

func MakeExportShoppingListController(db *mongo.Database) *controllers.ExportShoppingListController {
	findShoppingListByIdAndUserId := shopping_list_repository.NewFindShoppingListByIdAndUserIdRepository(db)
	return controllers.NewExportShoppingListController(findShoppingListByIdAndUserId)
}
