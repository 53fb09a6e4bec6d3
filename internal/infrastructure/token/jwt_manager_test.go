package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	domain "kairo/backend/internal/domain/auth"
)

func TestIssueAndValidate(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("test-secret", time.Hour, "kairo")

	tok, err := m.Issue(domain.RoleStaff)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	role, err := m.Validate(tok)
	require.NoError(t, err)
	require.Equal(t, domain.RoleStaff, role)
}

func TestValidateExpired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("test-secret", -time.Minute, "kairo")

	tok, err := m.Issue(domain.RoleAdmin)
	require.NoError(t, err)

	_, err = m.Validate(tok)
	require.Error(t, err)
}

func TestValidateTamperedSignature(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("test-secret", time.Hour, "kairo")

	tok, err := m.Issue(domain.RoleAdmin)
	require.NoError(t, err)

	// Flip the last byte of the signature segment.
	tampered := []byte(tok)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = m.Validate(string(tampered))
	require.Error(t, err)
}

func TestValidateWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewJWTManager("right-secret", time.Hour, "kairo")
	verifier := NewJWTManager("wrong-secret", time.Hour, "kairo")

	tok, err := issuer.Issue(domain.RoleStaff)
	require.NoError(t, err)

	_, err = verifier.Validate(tok)
	require.Error(t, err)
}

func TestValidateMalformed(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("test-secret", time.Hour, "kairo")

	for _, input := range []string{"", "garbage", "not.a.jwt", "a.b"} {
		_, err := m.Validate(input)
		require.Error(t, err, "input %q", input)
	}
}

func TestValidateRejectsUnsignedToken(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("test-secret", time.Hour, "kairo")

	claims := Claims{
		Role: string(domain.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Validate(tok)
	require.Error(t, err)
}
