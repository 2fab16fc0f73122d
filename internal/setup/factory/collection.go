package factory

import (
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/repositories/collection_repository"
	"github.com/flavourly/flavourly-backend/internal/infra/db/mongodb/repositories/recipe_repository"
	controllers "github.com/flavourly/flavourly-backend/internal/presentation/controllers/collection"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateCollectionController(db *mongo.Database) *controllers.CreateCollectionController {
	createCollection := collection_repository.NewCreateCollectionRepository(db)
	return controllers.NewCreateCollectionController(createCollection)
}

func MakeGetCollectionsController(db *mongo.Database) *controllers.GetCollectionsController {
	findCollections := collection_repository.NewFindCollectionsByUserIdRepository(db)
	return controllers.NewGetCollectionsController(findCollections)
}

func MakeGetCollectionByIdController(db *mongo.Database) *controllers.GetCollectionByIdController {
	findCollectionByIdAndUserId := collection_repository.NewFindCollectionByIdAndUserIdRepository(db)
	return controllers.NewGetCollectionByIdController(findCollectionByIdAndUserId)
}

func MakeDeleteCollectionController(db *mongo.Database) *controllers.DeleteCollectionController {
	deleteCollection := collection_repository.NewDeleteCollectionRepository(db)
	return controllers.NewDeleteCollectionController(deleteCollection)
}

func MakeAddRecipeToCollectionController(db *mongo.Database) *controllers.AddRecipeToCollectionController {
	findRecipeById := recipe_repository.NewFindRecipeByIdRepository(db)
	addRecipe := collection_repository.NewAddRecipeToCollectionRepository(db)
	return controllers.NewAddRecipeToCollectionController(findRecipeById, addRecipe)
}

func MakeRemoveRecipeFromCollectionController(db *mongo.Database) *controllers.RemoveRecipeFromCollectionController {
	removeRecipe := collection_repository.NewRemoveRecipeFromCollectionRepository(db)
	return controllers.NewRemoveRecipeFromCollectionController(removeRecipe)
}
