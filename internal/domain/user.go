package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// User is the single local account this deployment runs as. There is no
// multi-tenant isolation beyond the UserID foreign key on owned records.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"` // opaque, never interpreted
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserRepository interface {
	Get(ctx context.Context) (*User, error)
	Save(ctx context.Context, user *User) error
}
