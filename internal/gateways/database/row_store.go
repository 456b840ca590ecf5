package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

// RowStore performs inserts and lookups on one table. The table's first
// columns follow the <stem>_id, <stem>_name convention.
type RowStore struct {
	db     bun.IDB
	table  *SchemaTable
	lastID int64
}

func NewRowStore(db bun.IDB, table *SchemaTable) *RowStore {
	return &RowStore{
		db:    db,
		table: table,
	}
}

func (s *RowStore) Table() *SchemaTable {
	return s.table
}

// LastID returns the id assigned by the most recent successful insert.
func (s *RowStore) LastID() int64 {
	return s.lastID
}

// InsertIfAbsent inserts one row given the values of every non-id column in
// declaration order. A row that conflicts with a unique constraint is
// ignored and reported with inserted=false.
func (s *RowStore) InsertIfAbsent(ctx context.Context, values ...interface{}) (id int64, inserted bool, err error) {
	columns := s.table.ValueColumns()
	if len(values) != len(columns) {
		return 0, false, &RepositoryError{
			Operation: "insert",
			Entity:    s.table.Name,
			Err:       fmt.Errorf("got %d values for %d columns", len(values), len(columns)),
		}
	}

	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}

	err = s.db.NewRaw(
		"INSERT INTO ? (?) VALUES (?) ON CONFLICT DO NOTHING RETURNING ?",
		bun.Ident(s.table.Name),
		bun.Safe(strings.Join(names, ", ")),
		bun.In(values),
		bun.Ident(s.table.PrimaryKey()),
	).Scan(ctx, &id)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && id == 0) {
		return s.lastID, false, nil
	}
	if err != nil {
		return 0, false, handleError("insert", s.table.Name, nil, err)
	}

	s.lastID = id
	return id, true, nil
}

// LookupIDs returns the ids whose name matches pattern with LIKE semantics,
// in ascending order.
func (s *RowStore) LookupIDs(ctx context.Context, pattern string) ([]int64, error) {
	idColumn, nameColumn := s.table.IDColumn(), s.table.NameColumn()

	var ids []int64
	err := s.db.NewSelect().
		TableExpr("?", bun.Ident(s.table.Name)).
		ColumnExpr("?", bun.Ident(idColumn)).
		Where("? LIKE ?", bun.Ident(nameColumn), pattern).
		OrderExpr("? ASC", bun.Ident(idColumn)).
		Scan(ctx, &ids)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, handleError("lookup_ids", s.table.Name, pattern, err)
	}
	return ids, nil
}

// LookupName returns the name of the row with the given id.
func (s *RowStore) LookupName(ctx context.Context, id int64) (string, error) {
	idColumn, nameColumn := s.table.IDColumn(), s.table.NameColumn()

	var name string
	err := s.db.NewSelect().
		TableExpr("?", bun.Ident(s.table.Name)).
		ColumnExpr("?", bun.Ident(nameColumn)).
		Where("? = ?", bun.Ident(idColumn), id).
		Limit(1).
		Scan(ctx, &name)
	if err != nil {
		return "", handleError("lookup_name", s.table.Name, id, err)
	}
	return name, nil
}

// Names returns every name in id order.
func (s *RowStore) Names(ctx context.Context) ([]string, error) {
	idColumn, nameColumn := s.table.IDColumn(), s.table.NameColumn()

	var names []string
	err := s.db.NewSelect().
		TableExpr("?", bun.Ident(s.table.Name)).
		ColumnExpr("COALESCE(?, '')", bun.Ident(nameColumn)).
		OrderExpr("? ASC", bun.Ident(idColumn)).
		Scan(ctx, &names)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, handleError("names", s.table.Name, nil, err)
	}
	return names, nil
}

// Count returns the number of rows in the table.
func (s *RowStore) Count(ctx context.Context) (int, error) {
	n, err := s.db.NewSelect().
		TableExpr("?", bun.Ident(s.table.Name)).
		Count(ctx)
	if err != nil {
		return 0, handleError("count", s.table.Name, nil, err)
	}
	return n, nil
}
