package pgx

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gabrie-lhilarion/authd/core"
)

// Adapter implements core.CredentialStore on a PostgreSQL pool.
type Adapter struct {
	pool *pgxpool.Pool
}

var _ core.CredentialStore = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{pool: pool}
}

// Schema is the users table the adapter expects. The unique constraint
// on email is what turns the registration check-then-insert race into
// a single ErrEmailTaken.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id           bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	email        text NOT NULL UNIQUE,
	password_hash text NOT NULL,
	session_id   text,
	reset_token  text
)`

// EnsureSchema creates the users table if it does not exist.
func (a *Adapter) EnsureSchema(ctx context.Context) error {
	_, err := a.pool.Exec(ctx, Schema)
	return err
}
