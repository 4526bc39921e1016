package database

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

// PSQL builds queries with postgres placeholders.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const UsersTable = "users"

// Queryable is what repositories need from a pool or a transaction.
type Queryable interface {
	Get(ctx context.Context, dst interface{}, sqlizer Sqlizer) error
	Select(ctx context.Context, dst interface{}, sqlizer Sqlizer) error
}

type Sqlizer interface {
	ToSql() (sql string, args []interface{}, err error)
}
