package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/foodblog/recipebook/internal/domain/recipes"
	"github.com/foodblog/recipebook/internal/gateways/database"
	"github.com/spf13/cobra"
)

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

const maxLineSize = 1 << 20

func newPrompter(in io.Reader, out io.Writer) *prompter {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &prompter{in: scanner, out: out}
}

// ask prints label and reads one line. It returns io.EOF once input is
// exhausted and the scanner's error if a line could not be read.
func (p *prompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.in.Text(), "\r"), nil
}

func (p *prompter) say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// runAuthor reads recipes until an empty name. Bad input is reported and
// asked again; only store and read failures end the session.
func runAuthor(ctx context.Context, cmd *cobra.Command, catalog *database.Catalog) error {
	p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	author := recipes.NewAuthor(catalog)

	menu, err := author.MealMenu(ctx)
	if err != nil {
		return err
	}

	for {
		p.say("Pass the empty recipe name to exit.")
		name, err := p.ask("Recipe name: ")
		if err != nil || name == "" {
			return endOfInput(err)
		}
		description, err := p.ask("Recipe description: ")
		if err != nil {
			return endOfInput(err)
		}

		p.say("%s", menu)
		var recipeID int64
		for {
			selectors, err := p.ask("When the dish can be served: ")
			if err != nil {
				return endOfInput(err)
			}
			recipeID, err = author.CreateRecipe(ctx, name, description, selectors)
			if errors.Is(err, recipes.ErrMalformedInput) {
				p.say("%v", err)
				continue
			}
			if err != nil {
				return err
			}
			break
		}

		if err := addIngredients(ctx, p, author, recipeID); err != nil {
			return err
		}
	}
}

func addIngredients(ctx context.Context, p *prompter, author *recipes.Author, recipeID int64) error {
	for {
		line, err := p.ask("Input quantity of ingredient <press enter to stop>: ")
		if err != nil || line == "" {
			return endOfInput(err)
		}

		err = author.AddIngredient(ctx, recipeID, line)
		var matchErr *recipes.MatchError
		switch {
		case err == nil:
		case errors.As(err, &matchErr):
			if matchErr.Table == recipes.TableMeasures {
				p.say("The measure is not conclusive!")
				continue
			}
			p.say("The ingredient is not conclusive!")
			if errors.Is(err, recipes.ErrNotFound) {
				suggestIngredient(ctx, p, author, line)
			}
		case errors.Is(err, recipes.ErrMalformedInput):
			p.say("%v", err)
		default:
			return err
		}
	}
}

// endOfInput ends the session quietly on EOF and reports anything else.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func suggestIngredient(ctx context.Context, p *prompter, author *recipes.Author, line string) {
	parsed, err := recipes.ParseIngredientLine(line)
	if err != nil {
		return
	}
	suggestions, err := author.Suggest(ctx, recipes.TableIngredients, parsed.Ingredient)
	if err != nil || len(suggestions) == 0 {
		return
	}
	p.say("Did you mean: %s?", strings.Join(suggestions, ", "))
}
