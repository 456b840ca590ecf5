package recipes

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// Author adds recipes, their meals and their ingredient lines to the catalog.
type Author struct {
	repository Repository
}

func NewAuthor(repository Repository) *Author {
	return &Author{repository: repository}
}

// MealMenu lists the meals with their selector index, e.g.
// "1) breakfast  2) brunch  3) lunch  4) supper".
func (a *Author) MealMenu(ctx context.Context) (string, error) {
	meals, err := a.repository.Names(ctx, TableMeals)
	if err != nil {
		return "", fmt.Errorf("failed to list meals: %w", err)
	}
	entries := make([]string, len(meals))
	for i, meal := range meals {
		entries[i] = fmt.Sprintf("%d) %s", i+1, meal)
	}
	return strings.Join(entries, "  "), nil
}

// CreateRecipe stores a recipe together with the meals it is served at.
// selectors holds whitespace-separated 1-based meal indices as shown by
// MealMenu. The recipe and its serve rows are written in one transaction.
func (a *Author) CreateRecipe(ctx context.Context, name, description, selectors string) (int64, error) {
	if name == "" {
		return 0, &MalformedInputError{Input: name, Reason: "recipe name is empty"}
	}

	meals, err := a.repository.Names(ctx, TableMeals)
	if err != nil {
		return 0, fmt.Errorf("failed to list meals: %w", err)
	}
	mealIDs, err := parseSelectors(selectors, len(meals))
	if err != nil {
		return 0, err
	}

	var recipeID int64
	err = a.repository.RunInTx(ctx, func(ctx context.Context, repo Repository) error {
		id, err := repo.AddRecipe(ctx, name, description)
		if err != nil {
			return fmt.Errorf("failed to add recipe: %w", err)
		}
		for _, mealID := range mealIDs {
			if err := repo.AddServe(ctx, id, mealID); err != nil {
				return fmt.Errorf("failed to serve recipe %d at meal %d: %w", id, mealID, err)
			}
		}
		recipeID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("Recipe added",
		slog.String("type", "cmd"),
		slog.String("recipe", name),
		slog.Int64("recipe_id", recipeID),
		slog.Any("meal_ids", mealIDs),
	)
	return recipeID, nil
}

// meal ids follow the seed order, so selector i maps to meal id i.
func parseSelectors(selectors string, meals int) ([]int64, error) {
	fields := strings.Fields(selectors)
	ids := make([]int64, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, &MalformedInputError{Input: selectors, Reason: fmt.Sprintf("meal selector %q is not a number", field)}
		}
		if n < 1 || n > int64(meals) {
			return nil, &MalformedInputError{Input: selectors, Reason: fmt.Sprintf("meal selector %d is out of range 1..%d", n, meals)}
		}
		ids = append(ids, n)
	}
	return ids, nil
}

// ParseIngredientLine splits "<quantity> [<measure>] <ingredient>".
func ParseIngredientLine(line string) (IngredientLine, error) {
	fields := strings.Fields(line)

	var amount, measure, ingredient string
	switch len(fields) {
	case 2:
		amount, ingredient = fields[0], fields[1]
	case 3:
		amount, measure, ingredient = fields[0], fields[1], fields[2]
	default:
		return IngredientLine{}, &MalformedInputError{Input: line, Reason: "expected <quantity> [<measure>] <ingredient>"}
	}

	n, err := strconv.ParseInt(amount, 10, 64)
	if err != nil {
		return IngredientLine{}, &MalformedInputError{Input: line, Reason: fmt.Sprintf("quantity %q is not a whole number", amount)}
	}

	return IngredientLine{Amount: n, Measure: measure, Ingredient: ingredient}, nil
}

// AddIngredient parses line and attaches it to the recipe. The ingredient
// is matched as a substring and the measure as a prefix; either must
// resolve to exactly one row, otherwise a *MatchError is returned and
// nothing is written.
func (a *Author) AddIngredient(ctx context.Context, recipeID int64, line string) error {
	parsed, err := ParseIngredientLine(line)
	if err != nil {
		return err
	}

	ingredientID, err := a.resolveOne(ctx, TableIngredients, "%"+parsed.Ingredient+"%")
	if err != nil {
		return err
	}

	measurePattern := parsed.Measure
	if measurePattern != "" {
		measurePattern += "%"
	}
	measureID, err := a.resolveOne(ctx, TableMeasures, measurePattern)
	if err != nil {
		return err
	}

	return a.repository.AddQuantity(ctx, Quantity{
		MeasureID:    measureID,
		IngredientID: ingredientID,
		Amount:       parsed.Amount,
		RecipeID:     recipeID,
	})
}

func (a *Author) resolveOne(ctx context.Context, table, pattern string) (int64, error) {
	ids, err := a.repository.ResolveIDs(ctx, table, pattern)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve %s %q: %w", table, pattern, err)
	}
	if Resolve(ids) != Unique {
		return 0, &MatchError{Table: table, Pattern: pattern, Matches: len(ids)}
	}
	return ids[0], nil
}

// Suggest returns up to three vocabulary entries of table that fuzzily
// match word, best first.
func (a *Author) Suggest(ctx context.Context, table, word string) ([]string, error) {
	names, err := a.repository.Names(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}

	matches := fuzzy.Find(word, names)
	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out, nil
}
