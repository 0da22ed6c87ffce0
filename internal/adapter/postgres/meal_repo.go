package postgres

import (
	"context"

	"nutrilog/internal/domain"
)

// AddMeal appends a meal and its items in one transaction.
func (d *DB) AddMeal(ctx context.Context, m domain.Meal) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	var id int64
	if err := tx.QueryRowContext(ctx,
		"INSERT INTO meals(name, servings) VALUES($1, $2) RETURNING id;",
		m.Name, m.Servings,
	).Scan(&id); err != nil {
		return err
	}
	for pos, it := range m.Items {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO meal_items(meal_id, position, product_name, quantity) VALUES($1, $2, $3, $4);",
			id, pos, it.Product, it.Quantity,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListMeals returns the composer's meals in insertion order.
func (d *DB) ListMeals(ctx context.Context) ([]domain.Meal, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT m.id, m.name, m.servings, i.product_name, i.quantity
		 FROM meals m LEFT JOIN meal_items i ON i.meal_id = m.id
		 ORDER BY m.id, i.position;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Meal
	var lastID int64 = -1
	for rows.Next() {
		var (
			id       int64
			name     string
			servings float64
			product  *string
			quantity *float64
		)
		if err := rows.Scan(&id, &name, &servings, &product, &quantity); err != nil {
			return nil, err
		}
		if id != lastID {
			out = append(out, domain.Meal{Name: name, Servings: servings})
			lastID = id
		}
		if product != nil {
			m := &out[len(out)-1]
			m.Items = append(m.Items, domain.MealItem{Product: *product, Quantity: *quantity})
		}
	}
	return out, rows.Err()
}
