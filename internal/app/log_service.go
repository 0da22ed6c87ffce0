package app

import (
	"context"
	"errors"

	"nutrilog/internal/domain"
)

// ErrMealNotFound indicates that a saved-meal index was out of range.
var ErrMealNotFound = errors.New("meal not found")

// LogService encapsulates daily intake logging use cases.
type LogService struct {
	logs     domain.LogRepository
	meals    domain.MealRepository
	products domain.ProductRepository
}

// NewLogService creates a LogService backed by the given repositories.
func NewLogService(logs domain.LogRepository, meals domain.MealRepository, products domain.ProductRepository) *LogService {
	return &LogService{logs: logs, meals: meals, products: products}
}

// MealReport is one logged meal with its computed contribution.
type MealReport struct {
	Name     string            `json:"name"`
	Servings float64           `json:"servings"`
	Items    []domain.MealItem `json:"items"`
	Totals   domain.Totals     `json:"totals"`
}

// DayReport is a day's logged meals with aggregated totals, as shown in
// the daily-log view.
type DayReport struct {
	Day    string        `json:"day"`
	Meals  []MealReport  `json:"meals"`
	Totals domain.Totals `json:"totals"`
}

// LogMeal appends a meal to the (username, day) log entry, creating the
// entry if it does not exist yet, and persists the store.
func (s *LogService) LogMeal(ctx context.Context, username, day string, m domain.Meal) error {
	return s.logs.AppendMeal(ctx, username, day, m)
}

// LogSavedMeal logs the composer meal at index (zero-based) for the
// given user and day.
func (s *LogService) LogSavedMeal(ctx context.Context, username, day string, index int) (domain.Meal, error) {
	meals, err := s.meals.ListMeals(ctx)
	if err != nil {
		return domain.Meal{}, err
	}
	if index < 0 || index >= len(meals) {
		return domain.Meal{}, ErrMealNotFound
	}
	m := meals[index]
	return m, s.logs.AppendMeal(ctx, username, day, m)
}

// Aggregate sums a log's nutrient totals, re-resolving every product
// through the catalog at call time.
func (s *LogService) Aggregate(ctx context.Context, l domain.DailyLog) (domain.Totals, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return domain.Totals{}, err
	}
	return l.Totals(domain.NewCatalog(products)), nil
}

// History returns the user's daily logs ordered by day descending, each
// with per-meal and aggregated totals.
func (s *LogService) History(ctx context.Context, username string) ([]DayReport, error) {
	logs, err := s.logs.ListLogs(ctx, username)
	if err != nil {
		return nil, err
	}
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	catalog := domain.NewCatalog(products)

	reports := make([]DayReport, 0, len(logs))
	for _, l := range logs {
		r := DayReport{Day: l.Day, Meals: make([]MealReport, 0, len(l.Meals))}
		for _, m := range l.Meals {
			r.Meals = append(r.Meals, MealReport{
				Name:     m.Name,
				Servings: m.Servings,
				Items:    m.Items,
				Totals:   m.Totals(catalog),
			})
		}
		r.Totals = l.Totals(catalog)
		reports = append(reports, r)
	}
	return reports, nil
}
