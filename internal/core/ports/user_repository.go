package ports

import (
	"context"

	"github.com/genesis-platform/accounts-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
//
// Create resolves roleName to a role row (creating it on first reference)
// and relies on the store's unique constraint for duplicate detection: a
// colliding email surfaces as domain.ErrUserExists, never as a pre-check.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User, roleName string) (*domain.User, error)
	Update(ctx context.Context, email, newName, newEmail string) (*domain.User, error)
	UpdatePassword(ctx context.Context, email, newHash string) error
	Delete(ctx context.Context, email string) error
	List(ctx context.Context) ([]domain.User, error)
	RoleByID(ctx context.Context, id int64) (*domain.Role, error)
}
