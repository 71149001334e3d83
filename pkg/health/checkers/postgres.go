package checkers

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres отвечает на пинг медленнее редиса под нагрузкой,
// поэтому таймаут здесь чуть шире.
const pgCheckTimeout = 2 * time.Second

type PostgresChecker struct {
	pool *pgxpool.Pool
}

func NewPostgresChecker(pool *pgxpool.Pool) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, pgCheckTimeout)
	defer cancel()
	return c.pool.Ping(pingCtx)
}
