package database

import (
	"context"
	"errors"
	"testing"

	"github.com/foodblog/recipebook/internal/domain/recipes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	ctx := context.Background()

	db, err := New(ctx, DBConfig{Driver: DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)

	c, err := NewCatalog(db, 0)
	require.NoError(t, err)
	t.Cleanup(c.Close)

	require.NoError(t, c.Initialize(ctx))
	return c
}

func count(t *testing.T, c *Catalog, table string) int {
	t.Helper()
	s, err := c.store(table)
	require.NoError(t, err)
	n, err := s.Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestNew_unsupportedDriver(t *testing.T) {
	_, err := New(context.Background(), DBConfig{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)

	_, err = New(context.Background(), DBConfig{Driver: DriverSQLite})
	assert.Error(t, err)
}

func TestCatalog_InitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)

	before, err := c.ResolveIDs(ctx, recipes.TableMeasures, "%")
	require.NoError(t, err)

	require.NoError(t, c.Initialize(ctx))
	require.NoError(t, c.Initialize(ctx))

	assert.Equal(t, len(Meals), count(t, c, recipes.TableMeals))
	assert.Equal(t, len(Ingredients), count(t, c, recipes.TableIngredients))
	assert.Equal(t, len(Measures), count(t, c, recipes.TableMeasures))

	after, err := c.ResolveIDs(ctx, recipes.TableMeasures, "%")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCatalog_SeedIgnoresDuplicates(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)

	require.NoError(t, c.Seed(ctx, recipes.TableIngredients, []string{"milk", "flour", "flour"}))

	assert.Equal(t, len(Ingredients)+1, count(t, c, recipes.TableIngredients))
	ids, err := c.ResolveIDs(ctx, recipes.TableIngredients, "milk")
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)
}

func TestCatalog_SeedUnknownTable(t *testing.T) {
	c := newTestCatalog(t)
	assert.Error(t, c.Seed(context.Background(), "spices", []string{"pepper"}))
}

func TestCatalog_ResolveIDs(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)

	tests := []struct {
		table   string
		pattern string
		want    []int64
	}{
		{table: recipes.TableIngredients, pattern: "milk", want: []int64{1}},
		{table: recipes.TableIngredients, pattern: "%berry%", want: []int64{3, 4, 5}},
		{table: recipes.TableIngredients, pattern: "chocolate", want: nil},
		{table: recipes.TableIngredients, pattern: "bl_eberry", want: []int64{4}},
		{table: recipes.TableMeasures, pattern: "t%", want: []int64{5, 6}},
		{table: recipes.TableMeasures, pattern: "", want: []int64{8}},
		{table: recipes.TableMeals, pattern: "supper", want: []int64{4}},
	}
	for _, tt := range tests {
		got, err := c.ResolveIDs(ctx, tt.table, tt.pattern)
		require.NoError(t, err)
		assert.ElementsMatch(t, tt.want, got, "%s %q", tt.table, tt.pattern)
	}

	_, err := c.ResolveIDs(ctx, "spices", "pepper")
	assert.Error(t, err)
}

func TestCatalog_ResolveName(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)

	name, err := c.ResolveName(ctx, recipes.TableMeals, 3)
	require.NoError(t, err)
	assert.Equal(t, "lunch", name)

	// served from the cache the second time
	name, err = c.ResolveName(ctx, recipes.TableMeals, 3)
	require.NoError(t, err)
	assert.Equal(t, "lunch", name)

	_, err = c.ResolveName(ctx, recipes.TableRecipes, 42)
	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, recipes.TableRecipes, nfe.Entity)
	assert.True(t, errors.Is(err, recipes.ErrNotFound))
}

func TestCatalog_Names(t *testing.T) {
	c := newTestCatalog(t)

	got, err := c.Names(context.Background(), recipes.TableMeals)
	require.NoError(t, err)
	assert.Equal(t, Meals, got)
}

func TestRowStore_InsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)
	s, err := c.store(recipes.TableIngredients)
	require.NoError(t, err)

	id, inserted, err := s.InsertIfAbsent(ctx, "flour")
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, int64(len(Ingredients)+1), id)
	assert.Equal(t, id, s.LastID())

	again, inserted, err := s.InsertIfAbsent(ctx, "milk")
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, id, again)
	assert.Equal(t, id, s.LastID())

	_, _, err = s.InsertIfAbsent(ctx, "salt", "pepper")
	var re *RepositoryError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "insert", re.Operation)
}

func TestCatalog_ServeRejectsUnknownRecipe(t *testing.T) {
	c := newTestCatalog(t)

	err := c.AddServe(context.Background(), 99, 1)
	assert.Error(t, err)
	assert.Equal(t, 0, count(t, c, recipes.TableServe))
}

func TestCatalog_RunInTxRollsBack(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)
	boom := errors.New("boom")

	err := c.RunInTx(ctx, func(ctx context.Context, repo recipes.Repository) error {
		id, err := repo.AddRecipe(ctx, "Pancakes", "")
		require.NoError(t, err)
		require.NoError(t, repo.AddServe(ctx, id, 1))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, count(t, c, recipes.TableRecipes))
	assert.Equal(t, 0, count(t, c, recipes.TableServe))
}

func TestCatalog_RecipeIDs(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)

	pancakes, err := c.AddRecipe(ctx, "Pancakes", "")
	require.NoError(t, err)
	shake, err := c.AddRecipe(ctx, "Milkshake", "")
	require.NoError(t, err)
	require.NoError(t, c.AddQuantity(ctx, recipes.Quantity{MeasureID: 1, IngredientID: 1, Amount: 200, RecipeID: pancakes}))
	require.NoError(t, c.AddQuantity(ctx, recipes.Quantity{MeasureID: 1, IngredientID: 1, Amount: 300, RecipeID: shake}))
	require.NoError(t, c.AddQuantity(ctx, recipes.Quantity{MeasureID: 4, IngredientID: 3, Amount: 1, RecipeID: shake}))

	got, err := c.RecipeIDs(ctx, recipes.TableQuantity, recipes.ColumnIngredientID, []int64{1})
	require.NoError(t, err)
	assert.Equal(t, []int64{pancakes, shake}, got)

	got, err = c.RecipeIDs(ctx, recipes.TableQuantity, recipes.ColumnIngredientID, []int64{2})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = c.RecipeIDs(ctx, recipes.TableQuantity, recipes.ColumnIngredientID, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalog_FindRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)

	id, err := c.AddRecipe(ctx, "Pancakes", "desc")
	require.NoError(t, err)
	require.NoError(t, c.AddServe(ctx, id, 1))
	require.NoError(t, c.AddQuantity(ctx, recipes.Quantity{MeasureID: 1, IngredientID: 1, Amount: 200, RecipeID: id}))

	finder := recipes.NewFinder(c, recipes.OmittedFilterIntersect)

	got, err := finder.Find(ctx, "milk", "breakfast")
	require.NoError(t, err)
	assert.Equal(t, []string{"Pancakes"}, got)

	_, err = finder.Find(ctx, "chocolate", "breakfast")
	assert.ErrorIs(t, err, recipes.ErrNoSuchRecipes)

	// known anomaly: the omitted meal filter empties the result
	_, err = finder.Find(ctx, "milk", "")
	assert.ErrorIs(t, err, recipes.ErrNoSuchRecipes)

	got, err = recipes.NewFinder(c, recipes.OmittedFilterPassthrough).Find(ctx, "milk", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Pancakes"}, got)
}

func TestCatalog_UnionThenIntersect(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)
	author := recipes.NewAuthor(c)

	jam, err := author.CreateRecipe(ctx, "Jam", "", "1 3")
	require.NoError(t, err)
	require.NoError(t, author.AddIngredient(ctx, jam, "300 g straw"))
	require.NoError(t, author.AddIngredient(ctx, jam, "100 g sugar"))

	tart, err := author.CreateRecipe(ctx, "Tart", "", "4")
	require.NoError(t, err)
	require.NoError(t, author.AddIngredient(ctx, tart, "2 cup blackb"))

	finder := recipes.NewFinder(c, recipes.OmittedFilterIntersect)

	_, err = finder.Find(ctx, "strawberry,sugar", "")
	assert.ErrorIs(t, err, recipes.ErrNoSuchRecipes)

	got, err := finder.Find(ctx, "strawberry,sugar", "lunch")
	require.NoError(t, err)
	assert.Equal(t, []string{"Jam"}, got)

	got, err = finder.Find(ctx, "sugar,blackberry", "breakfast,supper")
	require.NoError(t, err)
	assert.Equal(t, []string{"Jam", "Tart"}, got)
}

func TestAuthor_AddIngredientAgainstStore(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)
	author := recipes.NewAuthor(c)

	id, err := author.CreateRecipe(ctx, "Smoothie", "", "2")
	require.NoError(t, err)

	assert.ErrorIs(t, author.AddIngredient(ctx, id, "1 cup berry"), recipes.ErrAmbiguous)
	assert.ErrorIs(t, author.AddIngredient(ctx, id, "1 t sugar"), recipes.ErrAmbiguous)
	assert.ErrorIs(t, author.AddIngredient(ctx, id, "1 cup flour"), recipes.ErrNotFound)
	assert.ErrorIs(t, author.AddIngredient(ctx, id, "cup of milk"), recipes.ErrMalformedInput)
	assert.Equal(t, 0, count(t, c, recipes.TableQuantity))

	require.NoError(t, author.AddIngredient(ctx, id, "1 blueb"))
	require.NoError(t, author.AddIngredient(ctx, id, "250 ml milk"))
	assert.Equal(t, 2, count(t, c, recipes.TableQuantity))
}
