// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"

	"nutrilog/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	users    map[string]domain.User
	products map[string]domain.Product
	meals    []domain.Meal
	logs     []*domain.DailyLog
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		users:    make(map[string]domain.User),
		products: make(map[string]domain.Product),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.ProductRepository = (*DB)(nil)
var _ domain.MealRepository = (*DB)(nil)
var _ domain.LogRepository = (*DB)(nil)

// --- UserRepository ---

// SaveUser inserts or overwrites a user.
func (db *DB) SaveUser(ctx context.Context, u domain.User) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.users[u.Name] = u
	return nil
}

// GetUser retrieves a user by name, nil if absent.
func (db *DB) GetUser(ctx context.Context, name string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if u, ok := db.users[name]; ok {
		return &u, nil
	}
	return nil, nil
}

// ListUsers returns all users ordered by name.
func (db *DB) ListUsers(ctx context.Context) ([]domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.User, 0, len(db.users))
	for _, u := range db.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// --- ProductRepository ---

// SaveProduct inserts or overwrites a product.
func (db *DB) SaveProduct(ctx context.Context, p domain.Product) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.products[p.Name] = p
	return nil
}

// GetProduct retrieves a product by name, nil if absent.
func (db *DB) GetProduct(ctx context.Context, name string) (*domain.Product, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if p, ok := db.products[name]; ok {
		return &p, nil
	}
	return nil, nil
}

// ListProducts returns the catalog ordered by name.
func (db *DB) ListProducts(ctx context.Context) ([]domain.Product, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.Product, 0, len(db.products))
	for _, p := range db.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// --- MealRepository ---

// AddMeal appends a meal to the composer list.
func (db *DB) AddMeal(ctx context.Context, m domain.Meal) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.meals = append(db.meals, m)
	return nil
}

// ListMeals returns meals in insertion order.
func (db *DB) ListMeals(ctx context.Context) ([]domain.Meal, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.Meal, len(db.meals))
	copy(out, db.meals)
	return out, nil
}

// --- LogRepository ---

// AppendMeal adds a meal to the (username, day) entry, creating it on first use.
func (db *DB) AppendMeal(ctx context.Context, username, day string, m domain.Meal) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, l := range db.logs {
		if l.Username == username && l.Day == day {
			l.Meals = append(l.Meals, m)
			return nil
		}
	}
	db.logs = append(db.logs, &domain.DailyLog{
		Username: username,
		Day:      day,
		Meals:    []domain.Meal{m},
	})
	return nil
}

// ListLogs returns the user's entries ordered by day descending.
func (db *DB) ListLogs(ctx context.Context, username string) ([]domain.DailyLog, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var out []domain.DailyLog
	for _, l := range db.logs {
		if l.Username == username {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day > out[j].Day })
	return out, nil
}
