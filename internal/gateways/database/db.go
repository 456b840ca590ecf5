package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/foodblog/recipebook/internal/domain/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/driver/sqliteshim"
)

const (
	defaultMaxRetries    = 3
	defaultRetryInterval = time.Second
)

// Supported drivers.
const (
	DriverSQLite = "sqlite"
	DriverPG     = "pg"
	DriverPGX    = "pgx"
)

type DBConfig struct {
	Driver   string `toml:"driver"`
	DSN      string `toml:"dsn"`
	PoolSize int    `toml:"pool_size"`
}

// DB is the single store session used by the catalog.
type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

func New(ctx context.Context, cfg DBConfig) (*DB, error) {
	if cfg.DSN == "" {
		return nil, errors.New("database dsn is empty")
	}

	var (
		db  *DB
		err error
	)
	switch cfg.Driver {
	case "", DriverSQLite:
		db, err = newSQLite(cfg)
	case DriverPG:
		db = newPG(cfg)
	case DriverPGX:
		db, err = newPGX(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.ping(ctx); err != nil {
		db.Close()
		return nil, err
	}

	db.bunDB.AddQueryHook(queryHook{})
	return db, nil
}

func (db *DB) ping(ctx context.Context) error {
	var err error
	for attempt := 1; attempt <= defaultMaxRetries; attempt++ {
		if err = db.bunDB.PingContext(ctx); err == nil {
			return nil
		}
		if attempt == defaultMaxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("database unreachable: %w", ctx.Err())
		case <-time.After(defaultRetryInterval):
		}
	}
	return fmt.Errorf("database unreachable after %d attempts: %w", defaultMaxRetries, err)
}

// newSQLite pins the pool to one connection since in-memory databases are
// per connection. Foreign keys are switched on through the DSN so every
// connection the pool opens enforces them.
func newSQLite(cfg DBConfig) (*DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, sqliteDSN(cfg.DSN, sqliteshim.DriverName()))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	sqldb.SetMaxOpenConns(1)
	sqldb.SetMaxIdleConns(1)
	sqldb.SetConnMaxLifetime(0)

	return &DB{bunDB: bun.NewDB(sqldb, sqlitedialect.New())}, nil
}

// sqliteDSN appends the foreign key switch in the form the underlying driver
// understands: modernc runs _pragma values on connect, mattn reads _foreign_keys.
func sqliteDSN(dsn, driverName string) string {
	param := "_foreign_keys=1"
	if driverName == "sqlite" {
		param = "_pragma=foreign_keys(1)"
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + param
	}
	return dsn + "?" + param
}

func newPG(cfg DBConfig) *DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
	if cfg.PoolSize > 0 {
		sqldb.SetMaxOpenConns(cfg.PoolSize)
	}
	return &DB{bunDB: bun.NewDB(sqldb, pgdialect.New())}
}

func newPGX(ctx context.Context, cfg DBConfig) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	sqldb := stdlib.OpenDBFromPool(pool)
	return &DB{pool: pool, bunDB: bun.NewDB(sqldb, pgdialect.New())}, nil
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

func (db *DB) Close() {
	if db.bunDB != nil {
		if err := db.bunDB.Close(); err != nil {
			slog.Warn("Failed to close database",
				slog.String("type", "db"),
				slog.Any("error", err))
		}
	}
	if db.pool != nil {
		db.pool.Close()
	}
}

type queryHook struct{}

func (queryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (queryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	ql := &logger.QueryLogger{
		Operation: event.Operation(),
		Query:     event.Query,
		StartTime: event.StartTime,
	}

	err := event.Err
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
	}

	var rows int64
	if err == nil && event.Result != nil {
		rows, _ = event.Result.RowsAffected()
	}
	ql.Log(err, rows)
}
