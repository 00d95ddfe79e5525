package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB es el subconjunto de pgx que usan los repositorios. Lo satisfacen tanto
// *pgxpool.Pool como pgx.Tx, así el mismo repositorio sirve fuera y dentro
// de una transacción (ver TxRunner).
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
