// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"golang.org/x/crypto/blowfish"
)

// # bcrypt Wire Format

const (
	// bcryptIdent is the modular-crypt identifier written into every hash.
	bcryptIdent = "2b"

	// bcryptMaxPasswordBytes is the number of key bytes EksBlowfish consumes.
	bcryptMaxPasswordBytes = 72

	// encodedSaltSize is the length of the salt block in a bcrypt string.
	encodedSaltSize = 22

	// rawDigestSize is the number of cipher bytes kept in the digest (23 of 24).
	rawDigestSize = 23
)

// bcryptAlphabet is bcrypt's private base64 alphabet (not RFC 4648).
const bcryptAlphabet = "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var bcryptEncoding = base64.NewEncoding(bcryptAlphabet).WithPadding(base64.NoPadding)

// magicCipherData is "OrpheanBeholderScryDoubt", encrypted 64 times per block.
var magicCipherData = []byte{
	0x4f, 0x72, 0x70, 0x68,
	0x65, 0x61, 0x6e, 0x42,
	0x65, 0x68, 0x6f, 0x6c,
	0x64, 0x65, 0x72, 0x53,
	0x63, 0x72, 0x79, 0x44,
	0x6f, 0x75, 0x62, 0x74,
}

// bcryptWithSalt computes a full "$2b$<cost>$<salt><digest>" string for the
// given password using a caller-supplied 22 character salt block.
//
// x/crypto/bcrypt always draws a random salt, so the EksBlowfish setup is
// driven directly through x/crypto/blowfish here.
func bcryptWithSalt(password []byte, cost int, encodedSalt string) (string, error) {
	if len(encodedSalt) != encodedSaltSize {
		return "", fmt.Errorf("bcrypt: salt must be %d characters, got %d", encodedSaltSize, len(encodedSalt))
	}

	rawSalt, err := bcryptEncoding.DecodeString(encodedSalt)
	if err != nil {
		return "", fmt.Errorf("bcrypt: invalid salt encoding: %w", err)
	}

	cipher, err := expensiveBlowfishSetup(password, uint32(cost), rawSalt)
	if err != nil {
		return "", err
	}

	cipherData := make([]byte, len(magicCipherData))
	copy(cipherData, magicCipherData)

	for i := 0; i < len(cipherData); i += 8 {
		for j := 0; j < 64; j++ {
			cipher.Encrypt(cipherData[i:i+8], cipherData[i:i+8])
		}
	}

	// Only 23 of the 24 encrypted bytes are encoded, as every C implementation does.
	digest := bcryptEncoding.EncodeToString(cipherData[:rawDigestSize])

	return "$" + bcryptIdent + "$" + formatCost(cost) + "$" + encodedSalt + digest, nil
}

// expensiveBlowfishSetup runs the EksBlowfish key schedule: 2^cost rounds
// alternating key and salt expansion.
func expensiveBlowfishSetup(password []byte, cost uint32, salt []byte) (*blowfish.Cipher, error) {
	// The trailing NUL is part of the key, as in the reference implementation.
	key := make([]byte, 0, len(password)+1)
	key = append(key, password...)
	key = append(key, 0)

	cipher, err := blowfish.NewSaltedCipher(key, salt)
	if err != nil {
		return nil, fmt.Errorf("bcrypt: blowfish setup failed: %w", err)
	}

	rounds := uint64(1) << cost
	for i := uint64(0); i < rounds; i++ {
		blowfish.ExpandKey(key, cipher)
		blowfish.ExpandKey(salt, cipher)
	}

	return cipher, nil
}

// formatCost renders the cost as the two-digit field of a bcrypt string.
func formatCost(cost int) string {
	if cost < 10 {
		return "0" + strconv.Itoa(cost)
	}
	return strconv.Itoa(cost)
}

// isBcryptSalt reports whether every byte of s belongs to the bcrypt alphabet.
func isBcryptSalt(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isBcryptChar(s[i]) {
			return false
		}
	}
	return true
}

func isBcryptChar(c byte) bool {
	return c == '.' || c == '/' ||
		(c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9')
}
