package auth

import domain "kairo/backend/internal/domain/auth"

// TokenManager abstracts session-token issuance and verification.
type TokenManager interface {
	Issue(role domain.Role) (string, error)
	Validate(token string) (domain.Role, error)
}

// PasswordHasher abstracts one-way password hashing and verification.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash. It never
	// returns an error: a malformed hash is simply a failed verification.
	Verify(plaintext, hashed string) bool
}
