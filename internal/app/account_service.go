package app

import (
	"context"
	"errors"
	"strings"

	"nutrilog/internal/domain"
)

// ErrUserNotFound indicates that no user with the given name exists.
var ErrUserNotFound = errors.New("user not found")

// AccountService handles registration and name-lookup login. There is
// deliberately no password or token scheme.
type AccountService struct {
	users domain.UserRepository
}

// NewAccountService creates an AccountService backed by the given repository.
func NewAccountService(users domain.UserRepository) *AccountService {
	return &AccountService{users: users}
}

// SignUp registers a user, overwriting any existing profile with the
// same name, and persists the user list.
func (s *AccountService) SignUp(ctx context.Context, u domain.User) error {
	u.Name = strings.TrimSpace(u.Name)
	if u.Name == "" {
		return errors.New("user name must not be empty")
	}
	return s.users.SaveUser(ctx, u)
}

// Login looks a user up by name. Unknown names yield ErrUserNotFound.
func (s *AccountService) Login(ctx context.Context, name string) (*domain.User, error) {
	u, err := s.users.GetUser(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
