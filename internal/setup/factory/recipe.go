package factory

import (
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/repositories/recipe_repository"
	controllers "github.com/flavourly/flavourly-backend/internal/presentation/controllers/recipe"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateRecipeController(db *mongo.Database) *controllers.CreateRecipeController {
	createRecipe := recipe_repository.NewCreateRecipeRepository(db)
	return controllers.NewCreateRecipeController(createRecipe)
}

func MakeGetRecipesController(db *mongo.Database) *controllers.GetRecipesController {
	findRecipes := recipe_repository.NewFindRecipesByUserIdRepository(db)
	return controllers.NewGetRecipesController(findRecipes, findRecipes)
}

func MakeGetRecipeByIdController(db *mongo.Database) *controllers.GetRecipeByIdController {
	findRecipeById := recipe_repository.NewFindRecipeByIdRepository(db)
	return controllers.NewGetRecipeByIdController(findRecipeById)
}

func MakeUpdateRecipeController(db *mongo.Database) *controllers.UpdateRecipeController {
	findRecipeByIdAndUserId := recipe_repository.NewFindRecipeByIdAndUserIdRepository(db)
	updateRecipe := recipe_repository.NewUpdateRecipeRepository(db)
	return controllers.NewUpdateRecipeController(findRecipeByIdAndUserId, updateRecipe)
}

func MakeDeleteRecipeController(db *mongo.Database) *controllers.DeleteRecipeController {
	deleteRecipe := recipe_repository.NewDeleteRecipeRepository(db)
	return controllers.NewDeleteRecipeController(deleteRecipe)
}

func MakeVerifyRecipeController(db *mongo.Database) *controllers.VerifyRecipeController {
	verifyRecipe := recipe_repository.NewVerifyRecipeRepository(db)
	return controllers.NewVerifyRecipeController(verifyRecipe)
}

func MakeImportRecipesController(db *mongo.Database) *controllers.ImportRecipesController {
	createRecipe := recipe_repository.NewCreateRecipeRepository(db)
	return controllers.NewImportRecipesController(createRecipe)
}
