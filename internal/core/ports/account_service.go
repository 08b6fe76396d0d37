package ports

import (
	"context"

	"github.com/genesis-platform/accounts-api/internal/core/domain"
)

// RegisterInput carries the fields required to create an account. Role is
// optional and defaults to domain.RoleUser.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput renames a user in place. Email selects the target; an
// empty NewEmail keeps the current address.
type UpdateUserInput struct {
	Email    string
	NewName  string
	NewEmail string
}

type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error
	UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, email string) error
	ListUsers(ctx context.Context) ([]domain.User, error)
}
