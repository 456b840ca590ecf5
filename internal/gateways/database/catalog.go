package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/foodblog/recipebook/internal/domain/recipes"
	lru "github.com/hashicorp/golang-lru"
	"github.com/uptrace/bun"
)

const defaultNameCacheSize = 256

var _ recipes.Repository = (*Catalog)(nil)

// Catalog owns the store session and every table created through it.
// Each statement commits on its own unless it runs inside RunInTx.
type Catalog struct {
	db     *DB
	idb    bun.IDB
	inTx   bool
	tables map[string]*SchemaTable
	stores map[string]*RowStore
	names  *lru.Cache
}

// NewCatalog takes ownership of db; Close releases it. A cacheSize of zero
// selects the default.
func NewCatalog(db *DB, cacheSize int) (*Catalog, error) {
	if cacheSize <= 0 {
		cacheSize = defaultNameCacheSize
	}
	names, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create name cache: %w", err)
	}

	return &Catalog{
		db:     db,
		idb:    db.BunDB(),
		tables: make(map[string]*SchemaTable),
		stores: make(map[string]*RowStore),
		names:  names,
	}, nil
}

func (c *Catalog) Close() {
	if c.db != nil {
		c.db.Close()
	}
}

// CreateTable creates the table if it does not exist and registers it.
func (c *Catalog) CreateTable(ctx context.Context, name string, columns []Column, foreignKeys ...ForeignKey) (*SchemaTable, error) {
	table := NewSchemaTable(name, columns, foreignKeys...)
	if err := table.Create(ctx, c.idb); err != nil {
		return nil, err
	}

	c.tables[name] = table
	c.stores[name] = NewRowStore(c.idb, table)
	return table, nil
}

// Table returns a registered table.
func (c *Catalog) Table(name string) (*SchemaTable, bool) {
	t, ok := c.tables[name]
	return t, ok
}

func (c *Catalog) store(table string) (*RowStore, error) {
	s, ok := c.stores[table]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}
	return s, nil
}

// Seed inserts one single-column row per value, ignoring values already
// present.
func (c *Catalog) Seed(ctx context.Context, table string, rows []string) error {
	s, err := c.store(table)
	if err != nil {
		return err
	}

	inserted := 0
	for _, row := range rows {
		_, ok, err := s.InsertIfAbsent(ctx, row)
		if err != nil {
			return fmt.Errorf("failed to seed %s with %q: %w", table, row, err)
		}
		if ok {
			inserted++
		}
	}

	slog.Debug("Table seeded",
		slog.String("type", "db"),
		slog.String("table", table),
		slog.Int("rows", len(rows)),
		slog.Int("inserted", inserted),
	)
	return nil
}

// ResolveIDs matches pattern against the table's name column. No ids means
// no match; more than one means the pattern is ambiguous.
func (c *Catalog) ResolveIDs(ctx context.Context, table, pattern string) ([]int64, error) {
	s, err := c.store(table)
	if err != nil {
		return nil, err
	}
	return s.LookupIDs(ctx, pattern)
}

// ResolveName returns the name of a row. Rows are never updated, so names
// read outside a transaction are cached.
func (c *Catalog) ResolveName(ctx context.Context, table string, id int64) (string, error) {
	key := fmt.Sprintf("%s:%d", table, id)
	if c.names != nil {
		if name, ok := c.names.Get(key); ok {
			return name.(string), nil
		}
	}

	s, err := c.store(table)
	if err != nil {
		return "", err
	}
	name, err := s.LookupName(ctx, id)
	if err != nil {
		return "", err
	}

	if c.names != nil {
		c.names.Add(key, name)
	}
	return name, nil
}

func (c *Catalog) Names(ctx context.Context, table string) ([]string, error) {
	s, err := c.store(table)
	if err != nil {
		return nil, err
	}
	return s.Names(ctx)
}

// RecipeIDs returns the distinct recipe ids of junction rows whose column
// is one of ids.
func (c *Catalog) RecipeIDs(ctx context.Context, junction, column string, ids []int64) ([]int64, error) {
	if _, err := c.store(junction); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var recipeIDs []int64
	err := c.idb.NewSelect().
		Distinct().
		TableExpr("?", bun.Ident(junction)).
		ColumnExpr("recipe_id").
		Where("? IN (?)", bun.Ident(column), bun.In(ids)).
		OrderExpr("recipe_id ASC").
		Scan(ctx, &recipeIDs)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, handleError("recipe_ids", junction, ids, err)
	}
	return recipeIDs, nil
}

func (c *Catalog) AddRecipe(ctx context.Context, name, description string) (int64, error) {
	s, err := c.store(recipes.TableRecipes)
	if err != nil {
		return 0, err
	}
	id, _, err := s.InsertIfAbsent(ctx, name, description)
	return id, err
}

func (c *Catalog) AddServe(ctx context.Context, recipeID, mealID int64) error {
	s, err := c.store(recipes.TableServe)
	if err != nil {
		return err
	}
	_, _, err = s.InsertIfAbsent(ctx, recipeID, mealID)
	return err
}

func (c *Catalog) AddQuantity(ctx context.Context, q recipes.Quantity) error {
	s, err := c.store(recipes.TableQuantity)
	if err != nil {
		return err
	}
	_, _, err = s.InsertIfAbsent(ctx, q.MeasureID, q.IngredientID, q.Amount, q.RecipeID)
	return err
}

// RunInTx runs fn against a catalog bound to one transaction. Nested calls
// join the outer transaction.
func (c *Catalog) RunInTx(ctx context.Context, fn func(ctx context.Context, repo recipes.Repository) error) error {
	if c.inTx {
		return fn(ctx, c)
	}
	return c.idb.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, c.withTx(tx))
	})
}

// withTx shares the table registry but not the name cache, since ids
// written in a rolled back transaction may be reused.
func (c *Catalog) withTx(tx bun.Tx) *Catalog {
	stores := make(map[string]*RowStore, len(c.stores))
	for name, s := range c.stores {
		stores[name] = NewRowStore(tx, s.Table())
	}
	return &Catalog{
		idb:    tx,
		inTx:   true,
		tables: c.tables,
		stores: stores,
	}
}
