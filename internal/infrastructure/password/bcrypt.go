package password

import (
	"golang.org/x/crypto/bcrypt"

	usecase "kairo/backend/internal/usecase/auth"
)

// BcryptHasher hashes passwords with bcrypt. Each call salts independently,
// so hashing the same plaintext twice yields different stored values.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a hasher with the default bcrypt cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Ensure BcryptHasher implements the PasswordHasher interface.
var _ usecase.PasswordHasher = (*BcryptHasher)(nil)

// Hash derives a salted one-way hash of the plaintext.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify recomputes the hash using the salt embedded in hashed and compares
// in constant time. Malformed input yields false, never an error.
func (h *BcryptHasher) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
