package app_test

import (
	"context"
	"testing"

	"nutrilog/internal/app"
	"nutrilog/internal/domain"
)

func productList() []domain.Product {
	return []domain.Product{
		{Name: "egg", Unit: "100g", Calories: 155, Proteins: 13, Minerals: 1},
		{Name: "toast", Unit: "slice", Calories: 75, Proteins: 2.5, Minerals: 0.5},
	}
}

func TestAddMeal_NormalizesServings(t *testing.T) {
	tests := []struct {
		name     string
		servings float64
		want     float64
	}{
		{"zero servings", 0, 1},
		{"negative servings", -2, 1},
		{"positive servings", 3, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stored domain.Meal
			meals := &mockMealRepo{
				addFn: func(_ context.Context, m domain.Meal) error {
					stored = m
					return nil
				},
			}
			products := &mockProductRepo{
				listFn: func(_ context.Context) ([]domain.Product, error) { return productList(), nil },
			}
			svc := app.NewMealService(meals, products)

			_, _, err := svc.AddMeal(context.Background(), "breakfast",
				[]domain.MealItem{{Product: "egg", Quantity: 2}}, tc.servings)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stored.Servings != tc.want {
				t.Errorf("expected servings %v, got %v", tc.want, stored.Servings)
			}
		})
	}
}

func TestAddMeal_ReportsTotals(t *testing.T) {
	meals := &mockMealRepo{}
	products := &mockProductRepo{
		listFn: func(_ context.Context) ([]domain.Product, error) { return productList(), nil },
	}
	svc := app.NewMealService(meals, products)

	_, totals, err := svc.AddMeal(context.Background(), "breakfast",
		[]domain.MealItem{{Product: "egg", Quantity: 2}}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.Calories != 310 || totals.Proteins != 26 || totals.Minerals != 2 {
		t.Errorf("unexpected totals: %+v", totals)
	}
}

func TestAddMeal_DuplicateNamesAllowed(t *testing.T) {
	var count int
	meals := &mockMealRepo{
		addFn: func(_ context.Context, _ domain.Meal) error {
			count++
			return nil
		},
	}
	products := &mockProductRepo{
		listFn: func(_ context.Context) ([]domain.Product, error) { return nil, nil },
	}
	svc := app.NewMealService(meals, products)

	for i := 0; i < 2; i++ {
		if _, _, err := svc.AddMeal(context.Background(), "lunch", nil, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if count != 2 {
		t.Errorf("expected 2 appends, got %d", count)
	}
}

func TestUnknown(t *testing.T) {
	products := &mockProductRepo{
		listFn: func(_ context.Context) ([]domain.Product, error) { return productList(), nil },
	}
	svc := app.NewMealService(&mockMealRepo{}, products)

	missing, err := svc.Unknown(context.Background(), []domain.MealItem{
		{Product: "egg", Quantity: 1},
		{Product: "dragonfruit", Quantity: 2},
		{Product: "ambrosia", Quantity: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(missing) != 2 || missing[0] != "dragonfruit" || missing[1] != "ambrosia" {
		t.Errorf("unexpected missing list: %v", missing)
	}
}

func TestNewCustomMeal_NotPersisted(t *testing.T) {
	m := app.NewCustomMeal("late snack", []domain.MealItem{{Product: "toast", Quantity: 1}}, -1)
	if m.Servings != 1 {
		t.Errorf("expected normalized servings 1, got %v", m.Servings)
	}
	if m.Name != "late snack" {
		t.Errorf("unexpected name %q", m.Name)
	}
}
