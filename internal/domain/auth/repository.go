package auth

import (
	"context"
	"time"
)

// UserRepository defines persistence operations for auth users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, filter UserFilter) ([]*User, error)
	SetVerified(ctx context.Context, id string, verified bool, updatedAt time.Time) error
}

// UserFilter allows narrowing user queries.
type UserFilter struct {
	Verified *bool
}
