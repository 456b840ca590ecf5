package recipes

import "context"

//go:generate mockgen -destination=mock/repository.go -package=mock . Repository

// Repository is the catalog as seen by the search and authoring flows.
type Repository interface {
	ResolveIDs(ctx context.Context, table, pattern string) ([]int64, error)
	ResolveName(ctx context.Context, table string, id int64) (string, error)
	Names(ctx context.Context, table string) ([]string, error)
	// RecipeIDs returns the recipe ids of the junction rows whose column holds one of ids.
	RecipeIDs(ctx context.Context, junction, column string, ids []int64) ([]int64, error)
	AddRecipe(ctx context.Context, name, description string) (int64, error)
	AddServe(ctx context.Context, recipeID, mealID int64) error
	AddQuantity(ctx context.Context, q Quantity) error
	// RunInTx runs fn against a repository bound to a single transaction.
	RunInTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error
}
