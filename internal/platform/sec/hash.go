// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// # Salt Derivation

const (
	// SaltPrefixLength is the number of ServerSecret characters copied into the salt.
	SaltPrefixLength = 21

	// saltTerminator completes the 22 character bcrypt salt block.
	saltTerminator = "."

	// DefaultHashRounds is the bcrypt cost used when none is configured (2^10 rounds).
	DefaultHashRounds = 10
)

// Hasher turns plaintext passwords into deterministic bcrypt strings.
//
// # Fixed Salt
//
// Every hash shares one salt derived from the server secret, so the same
// password always produces the same hash and accounts can be looked up by
// (email, hash). The price: identical passwords produce identical hashes, and
// rotating the secret invalidates every stored credential with no rehash path.
//
// Hasher is immutable and safe for concurrent use.
type Hasher struct {
	salt string
	cost int
}

// NewHasher derives the salt from secret and validates the work factor.
//
// It fails with [ErrInvalidConfig] if the secret is shorter than
// [SaltPrefixLength], if its prefix is not valid bcrypt salt text, or if cost
// is outside the range bcrypt accepts.
func NewHasher(secret string, cost int) (*Hasher, error) {
	if len(secret) < SaltPrefixLength {
		return nil, fmt.Errorf("%w: server secret must be at least %d characters", ErrInvalidConfig, SaltPrefixLength)
	}

	prefix := secret[:SaltPrefixLength]
	if !isBcryptSalt(prefix) {
		return nil, fmt.Errorf("%w: the first %d characters of the server secret must be in [./A-Za-z0-9]", ErrInvalidConfig, SaltPrefixLength)
	}

	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: hash rounds must be between %d and %d, got %d", ErrInvalidConfig, bcrypt.MinCost, bcrypt.MaxCost, cost)
	}

	return &Hasher{
		salt: prefix + saltTerminator,
		cost: cost,
	}, nil
}

// Hash returns the bcrypt string for plaintext under the fixed salt.
//
// Only the first 72 bytes of plaintext take part in the hash.
func (hasher *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	if strings.IndexByte(plaintext, 0) >= 0 {
		return "", fmt.Errorf("%w: NUL bytes are not allowed", ErrInvalidPassword)
	}

	password := []byte(plaintext)
	if len(password) > bcryptMaxPasswordBytes {
		password = password[:bcryptMaxPasswordBytes]
	}

	hash, err := bcryptWithSalt(password, hasher.cost, hasher.salt)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}

	return hash, nil
}

// Cost returns the configured bcrypt work factor.
func (hasher *Hasher) Cost() int {
	return hasher.cost
}
