// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mgrodionov/fullstack-homework/internal/platform/sec"
)

const (
	testSecret  = "Ks9dP2mQ7vX4nB8cR1tYz-and-anything-after"
	otherSecret = "Zr3hW6jL0pF5sA9gE2uKx-and-anything-after"
	testCost    = 4
)

func newHasher(t *testing.T, secret string) *sec.Hasher {
	t.Helper()
	hasher, err := sec.NewHasher(secret, testCost)
	require.NoError(t, err)
	return hasher
}

/*
TestHasher_Deterministic verifies that hashing the same plaintext twice
yields the same string.
*/
func TestHasher_Deterministic(t *testing.T) {
	hasher := newHasher(t, testSecret)

	first, err := hasher.Hash("secret1")
	require.NoError(t, err)

	second, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

/*
TestHasher_SaltFromSecret checks the layout of the produced string: ident,
cost and the salt block taken from the secret.
*/
func TestHasher_SaltFromSecret(t *testing.T) {
	hasher := newHasher(t, testSecret)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$2b$04$"+testSecret[:21]+"."))
	assert.Len(t, hash, 60)

	// The standard library verifier must accept it.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")))
}

/*
TestHasher_DefaultCost verifies the default work factor end to end.
*/
func TestHasher_DefaultCost(t *testing.T) {
	hasher, err := sec.NewHasher(testSecret, sec.DefaultHashRounds)
	require.NoError(t, err)
	assert.Equal(t, 10, hasher.Cost())

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2b$10$"))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

/*
TestHasher_DistinctPasswords checks that different plaintexts do not collide.
*/
func TestHasher_DistinctPasswords(t *testing.T) {
	hasher := newHasher(t, testSecret)

	passwords := []string{"secret1", "secret2", "Secret1", "secret1 ", "s"}
	seen := make(map[string]string, len(passwords))

	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		require.NoError(t, err)

		previous, exists := seen[hash]
		assert.False(t, exists, "%q collides with %q", password, previous)
		seen[hash] = password
	}
}

/*
TestHasher_SecretChangesHash verifies that rotating the secret changes
every hash.
*/
func TestHasher_SecretChangesHash(t *testing.T) {
	first, err := newHasher(t, testSecret).Hash("secret1")
	require.NoError(t, err)

	second, err := newHasher(t, otherSecret).Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

/*
TestHasher_OnlyPrefixMatters shows that characters after the 21st do not
influence the salt.
*/
func TestHasher_OnlyPrefixMatters(t *testing.T) {
	first, err := newHasher(t, testSecret[:21]).Hash("secret1")
	require.NoError(t, err)

	second, err := newHasher(t, testSecret[:21]+"!!!different suffix").Hash("secret1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

/*
TestHasher_LongPasswordTruncated verifies that bytes beyond the 72nd are ignored.
*/
func TestHasher_LongPasswordTruncated(t *testing.T) {
	hasher := newHasher(t, testSecret)
	base := strings.Repeat("x", 72)

	first, err := hasher.Hash(base + "tail-one")
	require.NoError(t, err)

	second, err := hasher.Hash(base + "tail-two")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

/*
TestHasher_InvalidInput covers plaintexts the hasher refuses.
*/
func TestHasher_InvalidInput(t *testing.T) {
	hasher := newHasher(t, testSecret)

	_, err := hasher.Hash("")
	assert.ErrorIs(t, err, sec.ErrEmptyPassword)

	_, err = hasher.Hash("nul\x00byte")
	assert.ErrorIs(t, err, sec.ErrInvalidPassword)
}

/*
TestNewHasher_Config covers startup validation of the secret and cost.
*/
func TestNewHasher_Config(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		cost   int
	}{
		{"secret_too_short", "short-secret", 10},
		{"twenty_characters", strings.Repeat("a", 20), 10},
		{"prefix_outside_alphabet", "abc-def_ghi+jkl=mnopqrstuvwxyz", 10},
		{"cost_too_low", testSecret, 3},
		{"cost_too_high", testSecret, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, err := sec.NewHasher(tt.secret, tt.cost)
			assert.ErrorIs(t, err, sec.ErrInvalidConfig)
			assert.Nil(t, hasher)
		})
	}

	hasher, err := sec.NewHasher(strings.Repeat("a", 21), 10)
	require.NoError(t, err)
	assert.NotNil(t, hasher)
}

/*
TestHasher_Concurrent hashes from many goroutines at once.
*/
func TestHasher_Concurrent(t *testing.T) {
	hasher := newHasher(t, testSecret)

	expected, err := hasher.Hash("secret1")
	require.NoError(t, err)

	var group sync.WaitGroup
	results := make([]string, 8)

	for i := range results {
		group.Add(1)
		go func(index int) {
			defer group.Done()
			results[index], _ = hasher.Hash("secret1")
		}(i)
	}
	group.Wait()

	for _, result := range results {
		assert.Equal(t, expected, result)
	}
}
