package auth

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Low cost keeps the tests fast; correctness does not depend on the factor.
const testCost = bcrypt.MinCost

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong password", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	// A stored value that is not a bcrypt hash must verify as false, not panic.
	assert.False(t, hasher.Check("whatever", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("whatever", ""))
}

func TestBcryptHasher_LongPasswordTruncation(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	base := strings.Repeat("a", 72)
	hash, err := hasher.Hash(base + "suffix-one")
	require.NoError(t, err)

	// Only the first 72 bytes participate: differing suffixes still verify.
	assert.True(t, hasher.Check(base, hash))
	assert.True(t, hasher.Check(base+"suffix-two", hash))

	// A difference inside the first 72 bytes does not.
	assert.False(t, hasher.Check(strings.Repeat("b", 72), hash))
}

func TestBcryptHasher_CustomCost(t *testing.T) {
	hasher := NewBcryptHasherWithCost(6)

	hash, err := hasher.Hash("some password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestTruncatePassword(t *testing.T) {
	// Short inputs pass through untouched.
	assert.Equal(t, []byte("abc"), truncatePassword("abc"))
	assert.Len(t, truncatePassword(strings.Repeat("x", 72)), 72)

	// Long ASCII is cut at exactly 72 bytes.
	assert.Len(t, truncatePassword(strings.Repeat("x", 100)), 72)

	// A multi-byte character split by the 72-byte cut is discarded entirely,
	// and what remains is valid UTF-8.
	password := strings.Repeat("x", 70) + "世界" // 70 + 3 + 3 bytes
	got := truncatePassword(password)
	assert.Equal(t, 70, len(got))
	assert.True(t, utf8.Valid(got))
}
