package domain_test

import (
	"math"
	"testing"

	"nutrilog/internal/domain"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func testCatalog() domain.Catalog {
	return domain.NewCatalog([]domain.Product{
		{Name: "egg", Unit: "100g", Calories: 155, Proteins: 13, Minerals: 1},
		{Name: "toast", Unit: "slice", Calories: 75, Proteins: 2.5, Minerals: 0.5},
		{Name: "milk", Unit: "cup", Calories: 103, Proteins: 8, Minerals: 0.3},
	})
}

func TestContribution(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name     string
		product  string
		quantity float64
		servings float64
		want     domain.Totals
	}{
		{"egg scenario", "egg", 2, 1, domain.Totals{Calories: 310, Proteins: 26, Minerals: 2}},
		{"scaled by servings", "toast", 1, 3, domain.Totals{Calories: 225, Proteins: 7.5, Minerals: 1.5}},
		{"zero quantity", "milk", 0, 2, domain.Totals{}},
		{"negative quantity", "milk", -1, 1, domain.Totals{Calories: -103, Proteins: -8, Minerals: -0.3}},
		{"unknown product", "unicorn", 5, 5, domain.Totals{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Contribution(tc.product, tc.quantity, tc.servings)
			if !almostEqual(got.Calories, tc.want.Calories, 0.001) ||
				!almostEqual(got.Proteins, tc.want.Proteins, 0.001) ||
				!almostEqual(got.Minerals, tc.want.Minerals, 0.001) {
				t.Errorf("Contribution(%q, %v, %v) = %+v; want %+v",
					tc.product, tc.quantity, tc.servings, got, tc.want)
			}
		})
	}
}

func TestMealTotals(t *testing.T) {
	c := testCatalog()
	meal := domain.Meal{
		Name: "breakfast",
		Items: []domain.MealItem{
			{Product: "egg", Quantity: 2},
			{Product: "toast", Quantity: 1},
		},
		Servings: 3,
	}

	got := meal.Totals(c)
	want := domain.Totals{Calories: (310 + 75) * 3, Proteins: (26 + 2.5) * 3, Minerals: (2 + 0.5) * 3}
	if !almostEqual(got.Calories, want.Calories, 0.001) ||
		!almostEqual(got.Proteins, want.Proteins, 0.001) ||
		!almostEqual(got.Minerals, want.Minerals, 0.001) {
		t.Errorf("Totals = %+v; want %+v", got, want)
	}
}

func TestMealTotals_MissingProductContributesZero(t *testing.T) {
	c := testCatalog()
	meal := domain.Meal{
		Name: "partial",
		Items: []domain.MealItem{
			{Product: "egg", Quantity: 1},
			{Product: "dragonfruit", Quantity: 10},
		},
		Servings: 1,
	}

	got := meal.Totals(c)
	if !almostEqual(got.Calories, 155, 0.001) {
		t.Errorf("expected only egg to contribute, got %+v", got)
	}
}

func TestDailyLogTotals_EqualsSumOfMealTotals(t *testing.T) {
	c := testCatalog()
	log := domain.DailyLog{
		Username: "alice",
		Day:      "2024-01-01",
		Meals: []domain.Meal{
			{Name: "breakfast", Items: []domain.MealItem{{Product: "egg", Quantity: 2}}, Servings: 1},
			{Name: "snack", Items: []domain.MealItem{{Product: "milk", Quantity: 1}}, Servings: 2},
		},
	}

	var want domain.Totals
	for _, m := range log.Meals {
		want = want.Add(m.Totals(c))
	}

	got := log.Totals(c)
	if got != want {
		t.Errorf("log totals %+v != sum of meal totals %+v", got, want)
	}
}

func TestDailyLogTotals_ResolvesAtCallTime(t *testing.T) {
	log := domain.DailyLog{
		Username: "alice",
		Day:      "2024-01-01",
		Meals:    []domain.Meal{{Items: []domain.MealItem{{Product: "egg", Quantity: 1}}, Servings: 1}},
	}

	before := log.Totals(domain.NewCatalog([]domain.Product{{Name: "egg", Calories: 155}}))
	after := log.Totals(domain.NewCatalog([]domain.Product{{Name: "egg", Calories: 70}}))

	if before.Calories != 155 || after.Calories != 70 {
		t.Errorf("expected product edits to change historical totals, got %v then %v",
			before.Calories, after.Calories)
	}
}

func TestNormalizeServings(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"positive passes through", 2.5, 2.5},
		{"zero becomes one", 0, 1},
		{"negative becomes one", -3, 1},
		{"one stays one", 1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.NormalizeServings(tc.in); got != tc.want {
				t.Errorf("NormalizeServings(%v) = %v; want %v", tc.in, got, tc.want)
			}
		})
	}
}
