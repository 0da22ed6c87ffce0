package postgres

import (
	"context"
	"database/sql"
	"errors"

	"nutrilog/internal/domain"
)

// SaveProduct inserts or overwrites a product by name.
func (d *DB) SaveProduct(ctx context.Context, p domain.Product) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO products(name, unit, calories, proteins, minerals) VALUES($1, $2, $3, $4, $5)
		 ON CONFLICT (name) DO UPDATE SET unit=$2, calories=$3, proteins=$4, minerals=$5;`,
		p.Name, p.Unit, p.Calories, p.Proteins, p.Minerals,
	)
	return err
}

// GetProduct retrieves a product by name, nil if absent.
func (d *DB) GetProduct(ctx context.Context, name string) (*domain.Product, error) {
	var p domain.Product
	err := d.sql.QueryRowContext(ctx,
		"SELECT name, unit, calories, proteins, minerals FROM products WHERE name = $1;", name,
	).Scan(&p.Name, &p.Unit, &p.Calories, &p.Proteins, &p.Minerals)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProducts returns the catalog ordered by name.
func (d *DB) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT name, unit, calories, proteins, minerals FROM products ORDER BY name;")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.Name, &p.Unit, &p.Calories, &p.Proteins, &p.Minerals); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
