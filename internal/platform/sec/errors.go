// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "errors"

// # Configuration

// ErrInvalidConfig marks a startup configuration the security primitives refuse.
var ErrInvalidConfig = errors.New("sec: invalid configuration")

// # Hashing

var (
	// ErrEmptyPassword is returned by [Hasher.Hash] for an empty plaintext.
	ErrEmptyPassword = errors.New("sec: password must not be empty")

	// ErrInvalidPassword is returned for plaintext bcrypt cannot represent.
	ErrInvalidPassword = errors.New("sec: invalid password")
)

// # Token Verification
//
// These kinds are internal. Callers collapse all of them into one
// unauthenticated response.

var (
	// ErrInvalidSignature covers bad signatures, malformed tokens and unexpected algorithms.
	ErrInvalidSignature = errors.New("sec: invalid token signature")

	// ErrExpired is returned when the token's exp claim has passed.
	ErrExpired = errors.New("sec: token expired")

	// ErrMissingPayload is returned when a valid token carries no user_info claim.
	ErrMissingPayload = errors.New("sec: token has no user payload")
)
