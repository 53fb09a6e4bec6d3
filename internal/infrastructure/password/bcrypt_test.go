package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher()

	hashed, err := h.Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	require.NotEqual(t, "secret123", hashed)

	require.True(t, h.Verify("secret123", hashed))
	require.False(t, h.Verify("secret124", hashed))
}

func TestHashSaltsEachCall(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher()

	first, err := h.Hash("same-plaintext")
	require.NoError(t, err)
	second, err := h.Hash("same-plaintext")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, h.Verify("same-plaintext", first))
	require.True(t, h.Verify("same-plaintext", second))
}

func TestVerifyMalformedHash(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher()

	require.False(t, h.Verify("anything", ""))
	require.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
	require.False(t, h.Verify("anything", "$2a$garbage"))
}
