// Package domain contains the core business entities and interfaces.
package domain

import "context"

// User represents a registered person. Only the name participates in
// daily-log keys; the remaining profile fields are informational.
type User struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Sex    string  `json:"sex"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// UserRepository is the port for user persistence. Get returns nil
// (not an error) when the name is unknown.
type UserRepository interface {
	SaveUser(ctx context.Context, u User) error
	GetUser(ctx context.Context, name string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
}
