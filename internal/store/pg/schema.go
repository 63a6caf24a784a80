package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema mínimo del directorio de usuarios. La unicidad del email vive en el
// storage: es el árbitro final ante registros concurrentes.
const schema = `
CREATE TABLE IF NOT EXISTS app_user (
    id            UUID PRIMARY KEY,
    full_name     TEXT NOT NULL,
    rut           TEXT NOT NULL,
    email         TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'user',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS app_user_email_uq ON app_user (email);
`

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
