package postgres

import (
	"context"

	"nutrilog/internal/domain"
)

// AppendMeal records a logged meal for (username, day). Entries are
// implicit here: the grouping exists as rows keyed by username and day.
func (d *DB) AppendMeal(ctx context.Context, username, day string, m domain.Meal) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	var id int64
	if err := tx.QueryRowContext(ctx,
		"INSERT INTO log_meals(username, day, name, servings) VALUES($1, $2, $3, $4) RETURNING id;",
		username, day, m.Name, m.Servings,
	).Scan(&id); err != nil {
		return err
	}
	for pos, it := range m.Items {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO log_items(log_meal_id, position, product_name, quantity) VALUES($1, $2, $3, $4);",
			id, pos, it.Product, it.Quantity,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListLogs returns the user's daily logs ordered by day descending,
// with meals in the order they were logged.
func (d *DB) ListLogs(ctx context.Context, username string) ([]domain.DailyLog, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT l.day, l.id, l.name, l.servings, i.product_name, i.quantity
		 FROM log_meals l LEFT JOIN log_items i ON i.log_meal_id = l.id
		 WHERE l.username = $1
		 ORDER BY l.day DESC, l.id, i.position;`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DailyLog
	var lastMealID int64 = -1
	for rows.Next() {
		var (
			day      string
			mealID   int64
			name     string
			servings float64
			product  *string
			quantity *float64
		)
		if err := rows.Scan(&day, &mealID, &name, &servings, &product, &quantity); err != nil {
			return nil, err
		}

		if len(out) == 0 || out[len(out)-1].Day != day {
			out = append(out, domain.DailyLog{Username: username, Day: day})
			lastMealID = -1
		}
		l := &out[len(out)-1]
		if mealID != lastMealID {
			l.Meals = append(l.Meals, domain.Meal{Name: name, Servings: servings})
			lastMealID = mealID
		}
		if product != nil {
			m := &l.Meals[len(l.Meals)-1]
			m.Items = append(m.Items, domain.MealItem{Product: *product, Quantity: *quantity})
		}
	}
	return out, rows.Err()
}
