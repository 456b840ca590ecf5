package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/foodblog/recipebook/internal/domain/recipes"
)

// Seed order fixes the ids: meal selector i is meal id i.
var (
	Meals       = []string{"breakfast", "brunch", "lunch", "supper"}
	Ingredients = []string{"milk", "cacao", "strawberry", "blueberry", "blackberry", "sugar"}
	Measures    = []string{"ml", "g", "l", "cup", "tbsp", "tsp", "dsp", ""}
)

type tableDef struct {
	name        string
	columns     []Column
	foreignKeys []ForeignKey
	seed        []string
}

// Reference tables first so the relational tables can reference them.
var tableDefs = []tableDef{
	{
		name: recipes.TableMeals,
		columns: []Column{
			{Name: "meal_id", PrimaryKey: true},
			{Name: "meal_name", Type: "TEXT UNIQUE NOT NULL"},
		},
		seed: Meals,
	},
	{
		name: recipes.TableIngredients,
		columns: []Column{
			{Name: "ingredient_id", PrimaryKey: true},
			{Name: "ingredient_name", Type: "TEXT UNIQUE NOT NULL"},
		},
		seed: Ingredients,
	},
	{
		name: recipes.TableMeasures,
		columns: []Column{
			{Name: "measure_id", PrimaryKey: true},
			{Name: "measure_name", Type: "TEXT UNIQUE"},
		},
		seed: Measures,
	},
	{
		name: recipes.TableRecipes,
		columns: []Column{
			{Name: "recipe_id", PrimaryKey: true},
			{Name: "recipe_name", Type: "TEXT NOT NULL"},
			{Name: "recipe_description", Type: "TEXT"},
		},
	},
	{
		name: recipes.TableServe,
		columns: []Column{
			{Name: "serve_id", PrimaryKey: true},
			{Name: "recipe_id", Type: "INTEGER NOT NULL"},
			{Name: "meal_id", Type: "INTEGER NOT NULL"},
		},
		foreignKeys: []ForeignKey{
			{Column: "recipe_id", RefTable: recipes.TableRecipes, RefColumn: "recipe_id"},
			{Column: "meal_id", RefTable: recipes.TableMeals, RefColumn: "meal_id"},
		},
	},
	{
		name: recipes.TableQuantity,
		columns: []Column{
			{Name: "quantity_id", PrimaryKey: true},
			{Name: "measure_id", Type: "INTEGER NOT NULL"},
			{Name: "ingredient_id", Type: "INTEGER NOT NULL"},
			{Name: "quantity", Type: "INTEGER NOT NULL"},
			{Name: "recipe_id", Type: "INTEGER NOT NULL"},
		},
		foreignKeys: []ForeignKey{
			{Column: "measure_id", RefTable: recipes.TableMeasures, RefColumn: "measure_id"},
			{Column: "ingredient_id", RefTable: recipes.TableIngredients, RefColumn: "ingredient_id"},
			{Column: "recipe_id", RefTable: recipes.TableRecipes, RefColumn: "recipe_id"},
		},
	},
}

// Initialize creates every table and seeds the reference vocabulary. It is
// safe to run on every startup against the same store.
func (c *Catalog) Initialize(ctx context.Context) error {
	start := time.Now()

	for _, def := range tableDefs {
		if _, err := c.CreateTable(ctx, def.name, def.columns, def.foreignKeys...); err != nil {
			return fmt.Errorf("failed to create table %s: %w", def.name, err)
		}
		if len(def.seed) == 0 {
			continue
		}
		if err := c.Seed(ctx, def.name, def.seed); err != nil {
			return err
		}
	}

	slog.Info("Catalog initialized",
		slog.String("type", "sys"),
		slog.Int("tables", len(tableDefs)),
		slog.Duration("took", time.Since(start)),
	)
	return nil
}
