package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"openfood/internal/config"
	"openfood/internal/model"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"
)

// DB is a bun database handle together with the driver resources behind it.
type DB struct {
	*bun.DB
	pool *pgxpool.Pool
}

// Close closes the bun handle and, for Postgres, the underlying pool.
func (db *DB) Close() error {
	err := db.DB.Close()
	if db.pool != nil {
		db.pool.Close()
	}
	return err
}

// Open connects to the configured database and returns a bun handle for it.
// The connection is verified with a ping before returning.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = openPostgres(ctx, cfg, logger)
	case config.DriverSQLite:
		db, err = openSQL(ctx, "sqlite", cfg, logger)
	case config.DriverMySQL:
		db, err = openSQL(ctx, "mysql", cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	model.Register(db.DB)

	logger.Info().Str("driver", cfg.Driver).Msg("database connection created successfully")

	return db, nil
}

// NewPool creates a new PostgreSQL connection pool.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// Configure pool settings
	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = cfg.ConnLifetime()
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int("max_connections", cfg.MaxConnections).
		Int("min_connections", cfg.MinConnections).
		Msg("creating database connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*DB, error) {
	pool, err := NewPool(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	return &DB{
		DB:   bun.NewDB(sqlDB, pgdialect.New()),
		pool: pool,
	}, nil
}

func openSQL(ctx context.Context, driverName string, cfg config.DatabaseConfig, logger zerolog.Logger) (*DB, error) {
	logger.Info().
		Str("driver", driverName).
		Str("database", describeTarget(cfg)).
		Int("max_connections", cfg.MaxConnections).
		Msg("opening database")

	sqlDB, err := sql.Open(driverName, cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	maxOpen, maxIdle := cfg.MaxConnections, cfg.MinConnections
	// An in-memory SQLite database is private to its connection, so every
	// query has to go through the same one.
	if cfg.IsInMemory() {
		maxOpen, maxIdle = 1, 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(cfg.ConnLifetime())
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	var bunDB *bun.DB
	if driverName == "mysql" {
		bunDB = bun.NewDB(sqlDB, mysqldialect.New())
	} else {
		bunDB = bun.NewDB(sqlDB, sqlitedialect.New())
	}

	return &DB{DB: bunDB}, nil
}

func describeTarget(cfg config.DatabaseConfig) string {
	if cfg.Driver == config.DriverSQLite {
		return cfg.SQLitePath
	}
	return fmt.Sprintf("%s@%s:%d/%s", cfg.User, cfg.Host, cfg.Port, cfg.Database)
}
