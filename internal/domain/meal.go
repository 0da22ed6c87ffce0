package domain

import "context"

// MealItem pairs a product name with a quantity of its unit. Quantities
// are accepted as-is; zero or negative values are not rejected.
type MealItem struct {
	Product  string  `json:"product"`
	Quantity float64 `json:"quantity"`
}

// Meal is a named, reusable composition of product quantities plus a
// serving multiplier. Names need not be unique.
type Meal struct {
	Name     string     `json:"name"`
	Items    []MealItem `json:"items"`
	Servings float64    `json:"servings"`
}

// NormalizeServings maps non-positive serving multipliers to 1.
func NormalizeServings(s float64) float64 {
	if s <= 0 {
		return 1
	}
	return s
}

// MealRepository is the port for the meal composer's persisted list.
// AddMeal appends; there is no uniqueness constraint and no deletion.
type MealRepository interface {
	AddMeal(ctx context.Context, m Meal) error
	ListMeals(ctx context.Context) ([]Meal, error)
}
