package recipes

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// OmittedFilter selects how Find treats a filter the caller did not supply.
type OmittedFilter int

const (
	// OmittedFilterIntersect intersects with an empty set, so a single filter
	// never yields recipes. This is the historical behavior of the catalog.
	OmittedFilterIntersect OmittedFilter = iota
	// OmittedFilterPassthrough returns the supplied filter's recipes as-is.
	OmittedFilterPassthrough
)

// ParseOmittedFilter maps a config value onto an OmittedFilter.
func ParseOmittedFilter(s string) (OmittedFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "intersect":
		return OmittedFilterIntersect, nil
	case "passthrough":
		return OmittedFilterPassthrough, nil
	}
	return 0, fmt.Errorf("unknown omitted filter mode %q", s)
}

type Finder struct {
	repository Repository
	omitted    OmittedFilter
}

func NewFinder(repository Repository, omitted OmittedFilter) *Finder {
	return &Finder{
		repository: repository,
		omitted:    omitted,
	}
}

type idSet map[int64]struct{}

// Find returns the names of recipes that contain any of the given
// ingredients and are served at any of the given meals. Both arguments are
// comma-separated lists; an empty string means the filter was omitted.
//
// Any name that does not resolve aborts the whole search with
// ErrNoSuchRecipes. An empty result is reported the same way.
func (f *Finder) Find(ctx context.Context, ingredients, meals string) ([]string, error) {
	byIngredient, err := f.filter(ctx, ingredients, TableIngredients, ColumnIngredientID)
	if err != nil {
		return nil, err
	}
	byMeal, err := f.filter(ctx, meals, TableMeals, ColumnMealID)
	if err != nil {
		return nil, err
	}

	var result idSet
	switch {
	case f.omitted == OmittedFilterPassthrough && byIngredient == nil:
		result = byMeal
	case f.omitted == OmittedFilterPassthrough && byMeal == nil:
		result = byIngredient
	default:
		result = intersect(byIngredient, byMeal)
	}

	slog.Debug("Recipe search",
		slog.String("type", "cmd"),
		slog.String("ingredients", ingredients),
		slog.String("meals", meals),
		slog.Int("by_ingredient", len(byIngredient)),
		slog.Int("by_meal", len(byMeal)),
		slog.Int("matched", len(result)),
	)

	if len(result) == 0 {
		return nil, ErrNoSuchRecipes
	}

	ids := make([]int64, 0, len(result))
	for id := range result {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name, err := f.repository.ResolveName(ctx, TableRecipes, id)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve recipe %d: %w", id, err)
		}
		names = append(names, name)
	}
	return names, nil
}

// filter resolves a comma-separated list against table and unions the
// recipe sets of every resolved id. A nil set means the list was empty.
func (f *Finder) filter(ctx context.Context, list, table, column string) (idSet, error) {
	if list == "" {
		return nil, nil
	}

	var ids []int64
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		matched, err := f.repository.ResolveIDs(ctx, table, name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s %q: %w", table, name, err)
		}
		if Resolve(matched) != Unique {
			return nil, fmt.Errorf("%w: %w", ErrNoSuchRecipes, &MatchError{Table: table, Pattern: name, Matches: len(matched)})
		}
		ids = append(ids, matched[0])
	}

	set := make(idSet)
	for _, id := range ids {
		recipeIDs, err := f.repository.RecipeIDs(ctx, junctionFor(table), column, []int64{id})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch recipes for %s %d: %w", table, id, err)
		}
		for _, recipeID := range recipeIDs {
			set[recipeID] = struct{}{}
		}
	}
	return set, nil
}

func junctionFor(table string) string {
	if table == TableMeals {
		return TableServe
	}
	return TableQuantity
}

func intersect(a, b idSet) idSet {
	out := make(idSet)
	for id := range a {
		if _, ok := b[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}

// FormatResult renders a search outcome the way the CLI prints it.
func FormatResult(names []string) string {
	if len(names) == 0 {
		return "There are no such recipes in the database."
	}
	return "Recipes selected for you: " + strings.Join(names, ", ")
}
