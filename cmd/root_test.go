package cmd

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	opts = options{}

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

const session = `Pancakes
Fluffy and sweet
1
250 ml milk
2 tbsp sugar

Milkshake
Cold
9
1 3
300 ml milk
1 t sugar
1 berry
1 cup strwbry
five strawberry
5 strawberry

`

func TestRoot_authorThenFind(t *testing.T) {
	store := filepath.Join(t.TempDir(), "food.db")

	out, err := run(t, session, store)
	require.NoError(t, err)

	assert.Contains(t, out, "Pass the empty recipe name to exit.")
	assert.Contains(t, out, "1) breakfast  2) brunch  3) lunch  4) supper")
	assert.Contains(t, out, "meal selector 9 is out of range 1..4")
	assert.Contains(t, out, "The measure is not conclusive!")
	assert.Contains(t, out, "The ingredient is not conclusive!")
	assert.Contains(t, out, "Did you mean: strawberry")
	assert.Contains(t, out, `quantity "five" is not a whole number`)

	tests := []struct {
		name        string
		ingredients string
		meals       string
		want        string
	}{
		{
			name:        "both recipes",
			ingredients: "milk",
			meals:       "breakfast",
			want:        "Recipes selected for you: Pancakes, Milkshake",
		},
		{
			name:        "union within a filter",
			ingredients: "sugar, strawberry",
			meals:       "lunch",
			want:        "Recipes selected for you: Milkshake",
		},
		{
			name:        "empty intersection",
			ingredients: "sugar",
			meals:       "lunch",
			want:        "There are no such recipes in the database.",
		},
		{
			name:        "unused ingredient",
			ingredients: "cacao",
			meals:       "breakfast",
			want:        "There are no such recipes in the database.",
		},
		{
			name:        "unknown ingredient",
			ingredients: "milk, flour",
			meals:       "breakfast",
			want:        "There are no such recipes in the database.",
		},
		{
			name:        "ambiguous ingredient",
			ingredients: "berry",
			meals:       "breakfast",
			want:        "There are no such recipes in the database.",
		},
		{
			name:  "omitted ingredients",
			meals: "breakfast",
			want:  "There are no such recipes in the database.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := []string{store}
			if tt.ingredients != "" {
				args = append(args, "--ingredients="+tt.ingredients)
			}
			if tt.meals != "" {
				args = append(args, "--meals="+tt.meals)
			}

			out, err := run(t, "", args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestRoot_findPassthroughFromConfig(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "food.db")
	config := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(config, []byte("[search]\nomitted_filter = \"passthrough\"\n"), 0o600))

	_, err := run(t, session, store)
	require.NoError(t, err)

	out, err := run(t, "", store, "--config="+config, "--meals=lunch")
	require.NoError(t, err)
	assert.Equal(t, "Recipes selected for you: Milkshake\n", out)
}

func TestRoot_emptyNameExits(t *testing.T) {
	store := filepath.Join(t.TempDir(), "food.db")

	out, err := run(t, "\n", store)
	require.NoError(t, err)
	assert.Equal(t, "Pass the empty recipe name to exit.\nRecipe name: ", out)
}

func TestRoot_longDescription(t *testing.T) {
	store := filepath.Join(t.TempDir(), "food.db")

	input := "Soup\n" + strings.Repeat("x", 70000) + "\n1\n1 l milk\n\n\n"
	_, err := run(t, input, store)
	require.NoError(t, err)

	out, err := run(t, "", store, "--ingredients=milk", "--meals=breakfast")
	require.NoError(t, err)
	assert.Equal(t, "Recipes selected for you: Soup\n", out)
}

func TestRoot_oversizeLineFails(t *testing.T) {
	store := filepath.Join(t.TempDir(), "food.db")

	input := "Soup\n" + strings.Repeat("x", maxLineSize+1) + "\n1\n\nSecond\n"
	out, err := run(t, input, store)
	require.ErrorIs(t, err, bufio.ErrTooLong)
	assert.NotContains(t, out, "When the dish can be served:")
}

func TestInit(t *testing.T) {
	store := filepath.Join(t.TempDir(), "food.db")

	out, err := run(t, "", "init", store)
	require.NoError(t, err)
	assert.Equal(t, "Store "+store+" is ready.\n", out)

	out, err = run(t, "", store, "--ingredients=milk", "--meals=breakfast")
	require.NoError(t, err)
	assert.Equal(t, "There are no such recipes in the database.\n", out)
}

func TestRoot_badConfig(t *testing.T) {
	store := filepath.Join(t.TempDir(), "food.db")

	_, err := run(t, "", store, "--config="+filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = run(t, "", store, "--driver=oracle")
	assert.Error(t, err)
}
