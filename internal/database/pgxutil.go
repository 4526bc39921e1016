package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/xlab/closer"
)

//go:embed schema.sql
var schema string

// PGX is a Queryable backed by a pgx pool.
type PGX struct {
	pool *pgxpool.Pool
}

func NewPGX(ctx context.Context, url string) (*PGX, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse postgres url: %w", err)
	}

	pool, err := pgxpool.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	closer.Bind(pool.Close)

	return &PGX{pool: pool}, nil
}

// Migrate creates the tables the repositories expect.
func (p *PGX) Migrate(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	return nil
}

// Select scans all rows into a slice, leaving it nil when there are none.
func (p *PGX) Select(ctx context.Context, dst interface{}, sqlizer Sqlizer) error {
	return selectFn(ctx, p.pool, dst, sqlizer)
}

// Get scans exactly one row and fails with pgx.ErrNoRows when there is none.
func (p *PGX) Get(ctx context.Context, dst interface{}, sqlizer Sqlizer) error {
	return getFn(ctx, p.pool, dst, sqlizer)
}

func selectFn(ctx context.Context, q pgxscan.Querier, dst interface{}, sqlizer Sqlizer) error {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("ToSql: %w", err)
	}

	return pgxscan.Select(ctx, q, dst, query, args...)
}

func getFn(ctx context.Context, q pgxscan.Querier, dst interface{}, sqlizer Sqlizer) error {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("ToSql: %w", err)
	}

	return pgxscan.Get(ctx, q, dst, query, args...)
}
