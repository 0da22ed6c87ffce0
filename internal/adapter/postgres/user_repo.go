package postgres

import (
	"context"
	"database/sql"
	"errors"

	"nutrilog/internal/domain"
)

// SaveUser inserts or overwrites a user by name.
func (d *DB) SaveUser(ctx context.Context, u domain.User) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO users(name, age, sex, height, weight) VALUES($1, $2, $3, $4, $5)
		 ON CONFLICT (name) DO UPDATE SET age=$2, sex=$3, height=$4, weight=$5;`,
		u.Name, u.Age, u.Sex, u.Height, u.Weight,
	)
	return err
}

// GetUser retrieves a user by name, nil if absent.
func (d *DB) GetUser(ctx context.Context, name string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT name, age, sex, height, weight FROM users WHERE name = $1;", name,
	).Scan(&u.Name, &u.Age, &u.Sex, &u.Height, &u.Weight)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns all users ordered by name.
func (d *DB) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT name, age, sex, height, weight FROM users ORDER BY name;")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.Name, &u.Age, &u.Sex, &u.Height, &u.Weight); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
