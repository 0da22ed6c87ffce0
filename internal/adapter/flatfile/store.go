// Package flatfile implements the domain repositories over line-oriented
// text files. Collections are loaded wholesale at open and rewritten
// wholesale after every mutation; there is no incremental append.
package flatfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"nutrilog/internal/domain"
)

const (
	usersFile    = "users.txt"
	productsFile = "products.txt"
	mealsFile    = "meals.txt"
	logsFile     = "daily_logs.txt"
)

// Store keeps every collection in memory and mirrors it to flat files
// under a single directory. It implements all four repository ports.
type Store struct {
	dir string

	mu       sync.Mutex
	users    map[string]domain.User
	products map[string]domain.Product
	meals    []domain.Meal
	logs     map[logKey]*domain.DailyLog
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*Store)(nil)
var _ domain.ProductRepository = (*Store)(nil)
var _ domain.MealRepository = (*Store)(nil)
var _ domain.LogRepository = (*Store)(nil)

// Open creates dir if needed and loads all four collections. Missing
// files load as empty collections; an unreadable or undecodable file is
// a fatal open error.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("flatfile: create %s: %w", dir, err)
	}

	s := &Store{dir: dir}

	data, err := s.read(usersFile)
	if err != nil {
		return nil, err
	}
	s.users = decodeUsers(data)

	if data, err = s.read(productsFile); err != nil {
		return nil, err
	}
	s.products = decodeProducts(data)

	if data, err = s.read(mealsFile); err != nil {
		return nil, err
	}
	s.meals = decodeMeals(data)

	if data, err = s.read(logsFile); err != nil {
		return nil, err
	}
	if s.logs, err = decodeLogs(data); err != nil {
		return nil, fmt.Errorf("flatfile: load %s: %w", logsFile, err)
	}

	return s, nil
}

func (s *Store) read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("flatfile: read %s: %w", name, err)
	}
	return data, nil
}

// write truncates and rewrites a collection file. Callers hold s.mu.
func (s *Store) write(name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("flatfile: write %s: %w", name, err)
	}
	return nil
}

// --- UserRepository ---

// SaveUser inserts or overwrites a user and rewrites users.txt.
func (s *Store) SaveUser(ctx context.Context, u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[u.Name] = u
	return s.write(usersFile, encodeUsers(s.users))
}

// GetUser returns the named user, or nil if unknown.
func (s *Store) GetUser(ctx context.Context, name string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[name]; ok {
		return &u, nil
	}
	return nil, nil
}

// ListUsers returns all users ordered by name.
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.User, 0, len(s.users))
	for _, name := range sortedKeys(s.users) {
		out = append(out, s.users[name])
	}
	return out, nil
}

// --- ProductRepository ---

// SaveProduct inserts or overwrites a product and rewrites products.txt.
func (s *Store) SaveProduct(ctx context.Context, p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[p.Name] = p
	return s.write(productsFile, encodeProducts(s.products))
}

// GetProduct returns the named product, or nil if unknown.
func (s *Store) GetProduct(ctx context.Context, name string) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.products[name]; ok {
		return &p, nil
	}
	return nil, nil
}

// ListProducts returns the catalog ordered by name.
func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, name := range sortedKeys(s.products) {
		out = append(out, s.products[name])
	}
	return out, nil
}

// --- MealRepository ---

// AddMeal appends a meal and rewrites meals.txt.
func (s *Store) AddMeal(ctx context.Context, m domain.Meal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.meals = append(s.meals, m)
	return s.write(mealsFile, encodeMeals(s.meals))
}

// ListMeals returns the composer's meals in insertion order.
func (s *Store) ListMeals(ctx context.Context) ([]domain.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Meal, len(s.meals))
	copy(out, s.meals)
	return out, nil
}

// --- LogRepository ---

// AppendMeal adds a meal to the (username, day) entry, creating it on
// first use, and rewrites daily_logs.txt.
func (s *Store) AppendMeal(ctx context.Context, username, day string, m domain.Meal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := logKey{username: username, day: day}
	l, ok := s.logs[key]
	if !ok {
		l = &domain.DailyLog{Username: username, Day: day}
		s.logs[key] = l
	}
	l.Meals = append(l.Meals, m)
	return s.write(logsFile, encodeLogs(s.logs))
}

// ListLogs returns the user's entries ordered by day descending.
func (s *Store) ListLogs(ctx context.Context, username string) ([]domain.DailyLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.DailyLog
	for _, l := range s.logs {
		if l.Username == username {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day > out[j].Day })
	return out, nil
}
