// Package pgx provides a PostgreSQL-backed user store.
//
// Expected schema:
//
//	CREATE TABLE users (
//	    id            uuid PRIMARY KEY DEFAULT gen_random_uuid(),
//	    firstname     text NOT NULL,
//	    lastname      text NOT NULL,
//	    email         text NOT NULL UNIQUE,
//	    password_hash text NOT NULL,
//	    created_at    timestamptz NOT NULL DEFAULT now()
//	);
//
// The UNIQUE constraint on email is the authoritative uniqueness guard.
package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ebran/doorman"
)

// poolIface covers the pgxpool.Pool methods the adapter uses. pgxmock's
// pool satisfies it in tests.
type poolIface interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Adapter struct {
	pool poolIface
}

var _ doorman.UserStore = (*Adapter)(nil)

func New(pool poolIface) *Adapter {
	return &Adapter{pool: pool}
}
