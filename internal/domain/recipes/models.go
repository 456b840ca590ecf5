package recipes

// Reference and relational table names.
const (
	TableMeals       = "meals"
	TableIngredients = "ingredients"
	TableMeasures    = "measures"
	TableRecipes     = "recipes"
	TableServe       = "serve"
	TableQuantity    = "quantity"
)

// Junction columns used by the search.
const (
	ColumnMealID       = "meal_id"
	ColumnIngredientID = "ingredient_id"
)

// Quantity is one ingredient line of a recipe.
type Quantity struct {
	MeasureID    int64
	IngredientID int64
	Amount       int64
	RecipeID     int64
}

// IngredientLine is a parsed "<quantity> [<measure>] <ingredient>" entry.
type IngredientLine struct {
	Amount     int64
	Measure    string
	Ingredient string
}
