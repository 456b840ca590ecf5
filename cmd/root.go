package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/foodblog/recipebook/foodblog"
	"github.com/foodblog/recipebook/foodblog/logger"
	"github.com/foodblog/recipebook/internal/domain/recipes"
	"github.com/foodblog/recipebook/internal/gateways/database"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath  string
	driver      string
	ingredients string
	meals       string
	verbose     bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "foodblog <store>",
	Short: "Personal recipe catalog",
	Long: `Stores recipes, the meals they are served at and their ingredients.

With --ingredients and/or --meals the catalog is searched once. Otherwise
recipes are entered interactively until an empty recipe name is given.`,
	Version:       fmt.Sprintf("%s (%s)", version, commit),
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, catalog, err := openCatalog(cmd, args[0])
		if err != nil {
			return err
		}
		defer catalog.Close()

		if opts.ingredients != "" || opts.meals != "" {
			return runFind(ctx, cmd, cfg, catalog, args[0])
		}
		return runAuthor(ctx, cmd, catalog)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	flags.StringVar(&opts.driver, "driver", "", "store driver: sqlite, pg or pgx")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every statement")

	rootCmd.Flags().StringVar(&opts.ingredients, "ingredients", "", "comma-separated ingredient names")
	rootCmd.Flags().StringVar(&opts.meals, "meals", "", "comma-separated meal names")
}

// Execute runs the root command and logs the error that ended it.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		logger.LogError("foodblog failed", err)
	}
	return err
}

// openCatalog loads the config, installs the logger and opens, creates and
// seeds the store named by store.
func openCatalog(cmd *cobra.Command, store string) (*foodblog.Config, *database.Catalog, error) {
	cfg, err := foodblog.LoadConfig(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	if opts.verbose {
		cfg.Log.Level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(logger.NewHandler(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.NoColor)))

	if opts.driver != "" {
		cfg.DB.Driver = opts.driver
	}
	cfg.DB.DSN = store

	start := time.Now()
	db, err := database.New(cmd.Context(), database.DBConfig{
		Driver:   cfg.DB.Driver,
		DSN:      cfg.DB.DSN,
		PoolSize: cfg.DB.PoolSize,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open store %q: %w", store, err)
	}

	catalog, err := database.NewCatalog(db, cfg.Cache.Size)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	if err := catalog.Initialize(cmd.Context()); err != nil {
		catalog.Close()
		return nil, nil, fmt.Errorf("failed to initialize store %q: %w", store, err)
	}

	logger.LogStoreOpened(store, cfg.DB.Driver, time.Since(start))
	return cfg, catalog, nil
}

func runFind(ctx context.Context, cmd *cobra.Command, cfg *foodblog.Config, catalog *database.Catalog, store string) error {
	omitted, err := recipes.ParseOmittedFilter(cfg.Search.OmittedFilter)
	if err != nil {
		return err
	}

	start := time.Now()
	names, err := recipes.NewFinder(catalog, omitted).Find(ctx, opts.ingredients, opts.meals)
	if errors.Is(err, recipes.ErrNoSuchRecipes) {
		slog.Debug("No recipes matched", slog.Any("reason", err))
		err = nil
	}
	logger.LogSearch(store, opts.ingredients, opts.meals, len(names), time.Since(start), err)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), recipes.FormatResult(names))
	return nil
}
