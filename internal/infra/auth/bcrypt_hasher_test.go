package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher()

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Hashing is salted, so the same password never yields the same hash twice.
	secondHash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEqual(t, hash, secondHash)

	// The standard cost is used.
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher()
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_HashRejectsOverlongPassword(t *testing.T) {
	hasher := NewBcryptHasher()

	// bcrypt only accepts inputs up to 72 bytes.
	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}

	_, err := hasher.Hash(string(long))
	assert.Error(t, err)
}
