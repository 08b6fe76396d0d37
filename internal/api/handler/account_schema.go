package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/genesis-platform/accounts-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

type updateUserRequest struct {
	Email    string `json:"email"     validate:"required"`
	Name     string `json:"name"      validate:"required"`
	NewEmail string `json:"new_email" validate:"omitempty,email"`
}

type deleteUserRequest struct {
	Email string `json:"email" validate:"required"`
}

type changePasswordRequest struct {
	Email       string `json:"email"        validate:"required"`
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// --- Response types ---

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// userResponse is the projection of a user record exposed over HTTP. The
// password hash is deliberately absent: credential material never leaves the
// service, including on admin list responses.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
