package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/genesis-platform/accounts-api/internal/core/domain"
	"github.com/genesis-platform/accounts-api/internal/core/ports"
)

// AccountService implements registration, login, password changes and
// admin-driven user management on top of a UserRepository.
type AccountService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAccountService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AccountService {
	if tokenTTL <= 0 {
		tokenTTL = 2 * time.Hour
	}
	return &AccountService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login verifies the credentials, resolves the user's role name and returns
// a signed token carrying the email as subject plus the role claim. A role
// change after issuance is not reflected in outstanding tokens until they
// expire.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidInput
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if user.Role == "" {
		role, err := s.repo.RoleByID(ctx, user.RoleID)
		if err != nil {
			return "", nil, err
		}
		user.Role = role.Name
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AccountService) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	if email == "" || oldPassword == "" || newPassword == "" {
		return domain.ErrInvalidInput
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, email, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Str("email", email).Msg("password changed")
	return nil
}

func (s *AccountService) UpdateUser(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	if input.Email == "" || input.NewName == "" {
		return nil, domain.ErrInvalidInput
	}

	newEmail := input.NewEmail
	if newEmail == "" {
		newEmail = input.Email
	}

	return s.repo.Update(ctx, input.Email, input.NewName, newEmail)
}

func (s *AccountService) DeleteUser(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrInvalidInput
	}
	if err := s.repo.Delete(ctx, email); err != nil {
		return err
	}
	s.logger.Info().Str("email", email).Msg("user deleted")
	return nil
}

func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *AccountService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.Email,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
