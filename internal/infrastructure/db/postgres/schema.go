package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const schema = `
CREATE TABLE IF NOT EXISTS roles (
	id   BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role_id       BIGINT NOT NULL REFERENCES roles (id),
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);
`

// EnsureSchema idempotently applies the relational schema. It is safe to run
// on every startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// SeedAdmin ensures the admin role and a bootstrap admin account exist, with
// insert-if-absent semantics so restarts never clobber a changed password.
func SeedAdmin(ctx context.Context, pool *pgxpool.Pool, name, email, password string) error {
	const roleQuery = `
		INSERT INTO roles (name) VALUES ('admin')
		ON CONFLICT (name) DO NOTHING
	`
	if _, err := pool.Exec(ctx, roleQuery); err != nil {
		return fmt.Errorf("seed admin role: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()
	const userQuery = `
		INSERT INTO users (id, name, email, password_hash, role_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, (SELECT id FROM roles WHERE name = 'admin'), $5, $5)
		ON CONFLICT (email) DO NOTHING
	`
	if _, err := pool.Exec(ctx, userQuery, uuid.New(), name, email, string(hash), now); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	return nil
}
