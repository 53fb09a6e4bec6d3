package auth

import (
	"errors"
	"time"
)

var (
	// ErrInvalidCredentials indicates a login failure. Unknown usernames and
	// wrong passwords both map here so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUsernameExists signals a duplicate username registration.
	ErrUsernameExists = errors.New("username already registered")
	// ErrTokenInvalid means a supplied session token cannot be validated.
	ErrTokenInvalid = errors.New("token invalid or expired")
	// ErrUserNotFound indicates a missing user record.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidRole indicates the provided role is not supported.
	ErrInvalidRole = errors.New("invalid role")
)

// Role identifies the privileges assigned to a user. It is chosen at
// registration and never changes afterwards.
type Role string

const (
	// RoleAdmin represents an administrative user.
	RoleAdmin Role = "admin"
	// RoleStaff represents a standard staff user.
	RoleStaff Role = "staff"
)

// User models the authentication identity persisted in storage. New accounts
// start unverified; only the verification flow flips the flag.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Role         Role      `json:"role"`
	Verified     bool      `json:"verified"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Credentials captures raw credential input for login.
type Credentials struct {
	Username string
	Password string
}
