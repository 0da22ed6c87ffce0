package app_test

import (
	"context"
	"errors"
	"testing"

	"nutrilog/internal/app"
	"nutrilog/internal/domain"
)

func TestSignUp(t *testing.T) {
	var saved *domain.User
	users := &mockUserRepo{
		saveFn: func(_ context.Context, u domain.User) error {
			saved = &u
			return nil
		},
	}
	svc := app.NewAccountService(users)

	err := svc.SignUp(context.Background(), domain.User{
		Name: " alice ", Age: 30, Sex: "F", Height: 165, Weight: 60,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || saved.Name != "alice" {
		t.Fatalf("expected trimmed user to be saved, got %+v", saved)
	}
}

func TestSignUp_EmptyName(t *testing.T) {
	svc := app.NewAccountService(&mockUserRepo{})
	if err := svc.SignUp(context.Background(), domain.User{Name: "  "}); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestLogin(t *testing.T) {
	users := &mockUserRepo{
		getFn: func(_ context.Context, name string) (*domain.User, error) {
			if name == "alice" {
				return &domain.User{Name: "alice", Age: 30}, nil
			}
			return nil, nil
		},
	}
	svc := app.NewAccountService(users)

	u, err := svc.Login(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Age != 30 {
		t.Errorf("unexpected user: %+v", u)
	}

	if _, err := svc.Login(context.Background(), "bob"); !errors.Is(err, app.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
