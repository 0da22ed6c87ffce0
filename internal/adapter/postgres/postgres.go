// Package postgres implements the domain repositories using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS users (name TEXT PRIMARY KEY, age INT NOT NULL, sex TEXT NOT NULL, height DOUBLE PRECISION NOT NULL, weight DOUBLE PRECISION NOT NULL);",
		"CREATE TABLE IF NOT EXISTS products (name TEXT PRIMARY KEY, unit TEXT NOT NULL, calories DOUBLE PRECISION NOT NULL, proteins DOUBLE PRECISION NOT NULL, minerals DOUBLE PRECISION NOT NULL);",
		"CREATE TABLE IF NOT EXISTS meals (id BIGSERIAL PRIMARY KEY, name TEXT NOT NULL, servings DOUBLE PRECISION NOT NULL);",
		"CREATE TABLE IF NOT EXISTS meal_items (id BIGSERIAL PRIMARY KEY, meal_id BIGINT NOT NULL REFERENCES meals(id) ON DELETE CASCADE, position INT NOT NULL, product_name TEXT NOT NULL, quantity DOUBLE PRECISION NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_meal_items_meal_id ON meal_items(meal_id);",
		"CREATE TABLE IF NOT EXISTS log_meals (id BIGSERIAL PRIMARY KEY, username TEXT NOT NULL, day TEXT NOT NULL, name TEXT NOT NULL, servings DOUBLE PRECISION NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_log_meals_user_day ON log_meals(username, day);",
		"CREATE TABLE IF NOT EXISTS log_items (id BIGSERIAL PRIMARY KEY, log_meal_id BIGINT NOT NULL REFERENCES log_meals(id) ON DELETE CASCADE, position INT NOT NULL, product_name TEXT NOT NULL, quantity DOUBLE PRECISION NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_log_items_log_meal_id ON log_items(log_meal_id);",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
