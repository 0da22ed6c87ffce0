package app_test

import (
	"context"

	"nutrilog/internal/domain"
)

// Mock repositories (function-fields pattern).

type mockProductRepo struct {
	saveFn func(ctx context.Context, p domain.Product) error
	getFn  func(ctx context.Context, name string) (*domain.Product, error)
	listFn func(ctx context.Context) ([]domain.Product, error)
}

func (m *mockProductRepo) SaveProduct(ctx context.Context, p domain.Product) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, p)
	}
	return nil
}

func (m *mockProductRepo) GetProduct(ctx context.Context, name string) (*domain.Product, error) {
	if m.getFn != nil {
		return m.getFn(ctx, name)
	}
	return nil, nil
}

func (m *mockProductRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

type mockMealRepo struct {
	addFn  func(ctx context.Context, m domain.Meal) error
	listFn func(ctx context.Context) ([]domain.Meal, error)
}

func (m *mockMealRepo) AddMeal(ctx context.Context, meal domain.Meal) error {
	if m.addFn != nil {
		return m.addFn(ctx, meal)
	}
	return nil
}

func (m *mockMealRepo) ListMeals(ctx context.Context) ([]domain.Meal, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

type mockLogRepo struct {
	appendFn func(ctx context.Context, username, day string, m domain.Meal) error
	listFn   func(ctx context.Context, username string) ([]domain.DailyLog, error)
}

func (m *mockLogRepo) AppendMeal(ctx context.Context, username, day string, meal domain.Meal) error {
	if m.appendFn != nil {
		return m.appendFn(ctx, username, day, meal)
	}
	return nil
}

func (m *mockLogRepo) ListLogs(ctx context.Context, username string) ([]domain.DailyLog, error) {
	if m.listFn != nil {
		return m.listFn(ctx, username)
	}
	return nil, nil
}

type mockUserRepo struct {
	saveFn func(ctx context.Context, u domain.User) error
	getFn  func(ctx context.Context, name string) (*domain.User, error)
	listFn func(ctx context.Context) ([]domain.User, error)
}

func (m *mockUserRepo) SaveUser(ctx context.Context, u domain.User) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) GetUser(ctx context.Context, name string) (*domain.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, name)
	}
	return nil, nil
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}
