package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

// Column is one column declaration. Type is emitted verbatim, except for the
// primary key whose declaration depends on the dialect.
type Column struct {
	Name       string
	Type       string
	PrimaryKey bool
}

// ForeignKey references RefTable(RefColumn) from Column.
type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// SchemaTable describes one relational table.
type SchemaTable struct {
	Name        string
	Columns     []Column
	ForeignKeys []ForeignKey
}

func NewSchemaTable(name string, columns []Column, foreignKeys ...ForeignKey) *SchemaTable {
	return &SchemaTable{
		Name:        name,
		Columns:     columns,
		ForeignKeys: foreignKeys,
	}
}

// IDColumn and NameColumn follow the naming convention of columnNames.
func (t *SchemaTable) IDColumn() string {
	id, _ := columnNames(t.Name)
	return id
}

func (t *SchemaTable) NameColumn() string {
	_, name := columnNames(t.Name)
	return name
}

// PrimaryKey returns the declared primary key column, or the conventional
// id column when none is flagged.
func (t *SchemaTable) PrimaryKey() string {
	for _, c := range t.Columns {
		if c.PrimaryKey {
			return c.Name
		}
	}
	return t.IDColumn()
}

// ValueColumns are the columns a row supplies on insert.
func (t *SchemaTable) ValueColumns() []Column {
	out := make([]Column, 0, len(t.Columns))
	for _, c := range t.Columns {
		if !c.PrimaryKey {
			out = append(out, c)
		}
	}
	return out
}

// CreateStatement renders CREATE TABLE IF NOT EXISTS for the dialect. Every
// foreign key is declared ON DELETE SET NULL ON UPDATE CASCADE.
func (t *SchemaTable) CreateStatement(name dialect.Name) string {
	defs := make([]string, 0, len(t.Columns)+len(t.ForeignKeys))
	for _, c := range t.Columns {
		defs = append(defs, c.Name+" "+columnType(c, name))
	}
	for _, fk := range t.ForeignKeys {
		defs = append(defs, fmt.Sprintf(
			"FOREIGN KEY (%s) REFERENCES %s(%s) ON DELETE SET NULL ON UPDATE CASCADE",
			fk.Column, fk.RefTable, fk.RefColumn,
		))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", t.Name, strings.Join(defs, ", "))
}

func columnType(c Column, name dialect.Name) string {
	if !c.PrimaryKey {
		return c.Type
	}
	if name == dialect.PG {
		return "BIGSERIAL PRIMARY KEY"
	}
	return "INTEGER PRIMARY KEY"
}

// Create executes the creation statement. Re-running it against an existing
// table is a no-op.
func (t *SchemaTable) Create(ctx context.Context, db bun.IDB) error {
	query := t.CreateStatement(db.Dialect().Name())
	if _, err := db.ExecContext(ctx, query); err != nil {
		return &RepositoryError{Operation: "create_table", Entity: t.Name, Err: err}
	}
	return nil
}
