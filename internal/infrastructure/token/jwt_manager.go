package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domain "kairo/backend/internal/domain/auth"
	usecase "kairo/backend/internal/usecase/auth"
)

// JWTManager issues and validates signed session tokens. The signing secret
// is fixed at construction and never mutated, so concurrent use is safe.
type JWTManager struct {
	secret     []byte
	expiration time.Duration
	issuer     string
}

// NewJWTManager constructs a manager with the provided secret and expiration.
func NewJWTManager(secret string, expiration time.Duration, issuer string) *JWTManager {
	return &JWTManager{
		secret:     []byte(secret),
		expiration: expiration,
		issuer:     issuer,
	}
}

// Ensure JWTManager implements the TokenManager interface.
var _ usecase.TokenManager = (*JWTManager)(nil)

// Claims represents session token claims.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue creates a signed JWT carrying the role claim, bounded by the
// configured TTL.
func (m *JWTManager) Issue(role domain.Role) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate parses and verifies the token, returning the role claim when the
// signature, structure, and expiry all check out. Safe on arbitrary input.
func (m *JWTManager) Validate(tokenString string) (domain.Role, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}
	return domain.Role(claims.Role), nil
}
