package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/genesis-platform/accounts-api/internal/core/domain"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint
// violation. The users.email constraint is the authoritative duplicate
// check; there is no lookup-before-insert.
const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
		SELECT id, name, email, password_hash, role_id, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	u := &domain.User{}
	err := r.pool.QueryRow(ctx, q, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.RoleID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

// Create upserts the role row by name, then inserts the user referencing it.
// The two statements commit independently; a crash in between leaves an
// unreferenced role row, which later inserts reuse.
func (r *UserRepository) Create(ctx context.Context, user *domain.User, roleName string) (*domain.User, error) {
	const roleQuery = `
		INSERT INTO roles (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`
	var roleID int64
	if err := r.pool.QueryRow(ctx, roleQuery, roleName).Scan(&roleID); err != nil {
		return nil, fmt.Errorf("upsert role: %w", err)
	}

	const userQuery = `
		INSERT INTO users (id, name, email, password_hash, role_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, email, password_hash, role_id, created_at, updated_at
	`
	created := &domain.User{}
	err := r.pool.QueryRow(ctx, userQuery,
		uuid.New(), user.Name, user.Email, user.PasswordHash, roleID, user.CreatedAt, user.UpdatedAt).
		Scan(&created.ID, &created.Name, &created.Email, &created.PasswordHash,
			&created.RoleID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created.Role = roleName
	return created, nil
}

func (r *UserRepository) Update(ctx context.Context, email, newName, newEmail string) (*domain.User, error) {
	const q = `
		UPDATE users
		SET name = $1, email = $2, updated_at = $3
		WHERE email = $4
		RETURNING id, name, email, password_hash, role_id, created_at, updated_at
	`
	u := &domain.User{}
	err := r.pool.QueryRow(ctx, q, newName, newEmail, time.Now().UTC(), email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.RoleID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	role, err := r.RoleByID(ctx, u.RoleID)
	if err != nil {
		return nil, err
	}
	u.Role = role.Name
	return u, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, email, newHash string) error {
	const q = `UPDATE users SET password_hash = $1, updated_at = $2 WHERE email = $3`
	tag, err := r.pool.Exec(ctx, q, newHash, time.Now().UTC(), email)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, email string) error {
	const q = `DELETE FROM users WHERE email = $1`
	tag, err := r.pool.Exec(ctx, q, email)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	const q = `
		SELECT u.id, u.name, u.email, u.password_hash, u.role_id, r.name, u.created_at, u.updated_at
		FROM users u
		JOIN roles r ON r.id = u.role_id
		ORDER BY u.created_at, u.email
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash,
			&u.RoleID, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) RoleByID(ctx context.Context, id int64) (*domain.Role, error) {
	const q = `SELECT id, name FROM roles WHERE id = $1`
	role := &domain.Role{}
	if err := r.pool.QueryRow(ctx, q, id).Scan(&role.ID, &role.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return role, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
