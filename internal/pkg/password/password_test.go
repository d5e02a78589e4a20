package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, Verify("secret123", hash))
	assert.False(t, Verify("wrong", hash))
}

func TestHashToken(t *testing.T) {
	a := HashToken("token-a")
	b := HashToken("token-b")

	assert.Len(t, a, 64, "sha-256 hex digest")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, HashToken("token-a"), "deterministic")
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate("12345678"))
	assert.False(t, Validate("1234567"))
}
