package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun/dialect"
)

func TestColumnNames(t *testing.T) {
	tests := []struct {
		table    string
		wantID   string
		wantName string
	}{
		{table: "meals", wantID: "meal_id", wantName: "meal_name"},
		{table: "ingredients", wantID: "ingredient_id", wantName: "ingredient_name"},
		{table: "measures", wantID: "measure_id", wantName: "measure_name"},
		{table: "recipes", wantID: "recipe_id", wantName: "recipe_name"},
		// exactly one character is dropped, whatever it is
		{table: "serve", wantID: "serv_id", wantName: "serv_name"},
		{table: "quantity", wantID: "quantit_id", wantName: "quantit_name"},
		{table: "", wantID: "", wantName: ""},
	}
	for _, tt := range tests {
		id, name := columnNames(tt.table)
		assert.Equal(t, tt.wantID, id, tt.table)
		assert.Equal(t, tt.wantName, name, tt.table)
	}
}

func TestSchemaTable_CreateStatement(t *testing.T) {
	serve := NewSchemaTable("serve",
		[]Column{
			{Name: "serve_id", PrimaryKey: true},
			{Name: "recipe_id", Type: "INTEGER NOT NULL"},
			{Name: "meal_id", Type: "INTEGER NOT NULL"},
		},
		ForeignKey{Column: "recipe_id", RefTable: "recipes", RefColumn: "recipe_id"},
		ForeignKey{Column: "meal_id", RefTable: "meals", RefColumn: "meal_id"},
	)

	assert.Equal(t,
		"CREATE TABLE IF NOT EXISTS serve (serve_id INTEGER PRIMARY KEY, recipe_id INTEGER NOT NULL, meal_id INTEGER NOT NULL, "+
			"FOREIGN KEY (recipe_id) REFERENCES recipes(recipe_id) ON DELETE SET NULL ON UPDATE CASCADE, "+
			"FOREIGN KEY (meal_id) REFERENCES meals(meal_id) ON DELETE SET NULL ON UPDATE CASCADE)",
		serve.CreateStatement(dialect.SQLite),
	)
	assert.Equal(t,
		"CREATE TABLE IF NOT EXISTS serve (serve_id BIGSERIAL PRIMARY KEY, recipe_id INTEGER NOT NULL, meal_id INTEGER NOT NULL, "+
			"FOREIGN KEY (recipe_id) REFERENCES recipes(recipe_id) ON DELETE SET NULL ON UPDATE CASCADE, "+
			"FOREIGN KEY (meal_id) REFERENCES meals(meal_id) ON DELETE SET NULL ON UPDATE CASCADE)",
		serve.CreateStatement(dialect.PG),
	)
}

func TestSchemaTable_CreateStatementWithoutForeignKeys(t *testing.T) {
	meals := NewSchemaTable("meals", []Column{
		{Name: "meal_id", PrimaryKey: true},
		{Name: "meal_name", Type: "TEXT UNIQUE NOT NULL"},
	})

	assert.Equal(t,
		"CREATE TABLE IF NOT EXISTS meals (meal_id INTEGER PRIMARY KEY, meal_name TEXT UNIQUE NOT NULL)",
		meals.CreateStatement(dialect.SQLite),
	)
}

func TestSchemaTable_Columns(t *testing.T) {
	serve := NewSchemaTable("serve", []Column{
		{Name: "serve_id", PrimaryKey: true},
		{Name: "recipe_id", Type: "INTEGER NOT NULL"},
		{Name: "meal_id", Type: "INTEGER NOT NULL"},
	})

	assert.Equal(t, "serve_id", serve.PrimaryKey())
	assert.Equal(t, "serv_id", serve.IDColumn())
	assert.Equal(t, []Column{
		{Name: "recipe_id", Type: "INTEGER NOT NULL"},
		{Name: "meal_id", Type: "INTEGER NOT NULL"},
	}, serve.ValueColumns())

	bare := NewSchemaTable("tags", []Column{{Name: "tag_name", Type: "TEXT"}})
	assert.Equal(t, "tag_id", bare.PrimaryKey())
}
