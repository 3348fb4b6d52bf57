package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Logger *slog.Logger
}

// PoolOptions tunes a connection pool for one credential tier.
type PoolOptions struct {
	MaxConns int32
	MinConns int32
	// ReadOnly starts every session with default_transaction_read_only, so a
	// write through the public tier fails even if the role could write.
	ReadOnly bool
}

// ServicePool is used for admin mutations with the elevated credential.
var ServicePool = PoolOptions{MaxConns: 10, MinConns: 2}

// ReadOnlyPool is used by public listings.
var ReadOnlyPool = PoolOptions{MaxConns: 25, MinConns: 5, ReadOnly: true}

// CreateConnectionPool creates a pgx connection pool.
//
// Supabase's transaction pooler (PgBouncer, port 6543) does not support
// prepared statements. On that port the pool switches to
// QueryExecModeCacheDescribe, which keeps the extended protocol (needed for
// JSONB parameters) but only caches statement descriptions. An explicit
// default_query_exec_mode in the connection string takes precedence.
func CreateConnectionPool(ctx context.Context, databaseURL string, opts PoolOptions) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	config.MaxConns = opts.MaxConns
	config.MinConns = opts.MinConns

	if opts.ReadOnly {
		config.ConnConfig.RuntimeParams["default_transaction_read_only"] = "on"
	}

	if config.ConnConfig.Port == 6543 && config.ConnConfig.DefaultQueryExecMode == pgx.QueryExecModeCacheStatement {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
		slog.Debug("auto-configured cache_describe mode for PgBouncer compatibility", "port", 6543)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
