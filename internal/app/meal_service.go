package app

import (
	"context"
	"errors"
	"strings"

	"nutrilog/internal/domain"
)

// ErrUnknownProduct indicates that a meal item references a product
// that is not in the catalog.
var ErrUnknownProduct = errors.New("unknown product")

// MealService encapsulates the meal composer use cases.
type MealService struct {
	meals    domain.MealRepository
	products domain.ProductRepository
}

// NewMealService creates a MealService backed by the given repositories.
func NewMealService(meals domain.MealRepository, products domain.ProductRepository) *MealService {
	return &MealService{meals: meals, products: products}
}

// NewCustomMeal builds a meal value without persisting it. Used for
// one-off meals that are logged directly. Non-positive servings are
// normalized to 1.
func NewCustomMeal(name string, items []domain.MealItem, servings float64) domain.Meal {
	return domain.Meal{
		Name:     strings.TrimSpace(name),
		Items:    items,
		Servings: domain.NormalizeServings(servings),
	}
}

// AddMeal appends a meal to the composer's persisted list and returns
// the stored meal with its total nutrient contribution. Meal names need
// not be unique. Item validation against the catalog is the caller's
// responsibility (see Unknown).
func (s *MealService) AddMeal(ctx context.Context, name string, items []domain.MealItem, servings float64) (domain.Meal, domain.Totals, error) {
	meal := NewCustomMeal(name, items, servings)
	if err := s.meals.AddMeal(ctx, meal); err != nil {
		return domain.Meal{}, domain.Totals{}, err
	}
	totals, err := s.Totals(ctx, meal)
	return meal, totals, err
}

// List returns every meal in the composer.
func (s *MealService) List(ctx context.Context) ([]domain.Meal, error) {
	return s.meals.ListMeals(ctx)
}

// Totals computes a meal's nutrient contribution against the current
// catalog. Items naming unknown products contribute zero.
func (s *MealService) Totals(ctx context.Context, m domain.Meal) (domain.Totals, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return domain.Totals{}, err
	}
	return m.Totals(domain.NewCatalog(products)), nil
}

// Unknown reports which items reference products absent from the
// catalog. Collaborators call this before AddMeal to reject bad
// compositions; the composer itself does not re-validate.
func (s *MealService) Unknown(ctx context.Context, items []domain.MealItem) ([]string, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	catalog := domain.NewCatalog(products)

	var missing []string
	for _, it := range items {
		if _, ok := catalog.Resolve(it.Product); !ok {
			missing = append(missing, it.Product)
		}
	}
	return missing, nil
}
