// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides the credential and session primitives of the service.
//
// # Architecture
//
// This package isolates security-sensitive code (password hashing, session
// token signing) from the account domain. Both [Hasher] and [TokenService]
// are built once at startup from the server secret and injected into the
// account service; neither holds mutable state.
//
// # Known Weaknesses
//
//   - Passwords use a fixed salt derived from the server secret (see [Hasher]).
//   - Login compares hashes with plain equality inside the store query.
//   - Session tokens are stateless and cannot be revoked before they expire.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAlgorithm is the signing algorithm used when none is configured.
const DefaultAlgorithm = "HS256"

// expiryLeeway keeps a token valid through its whole exp second.
const expiryLeeway = time.Second

// UserInfo is the identity embedded in a session token.
//
// It never carries the password hash.
type UserInfo struct {
	ID    string `json:"uid"`
	Email string `json:"email"`
}

// SessionClaims represents the payload embedded inside a session token.
//
// The user identity lives under the "user_info" key next to the registered
// "iat" and "exp" claims.
type SessionClaims struct {
	jwt.RegisteredClaims

	UserInfo *UserInfo `json:"user_info,omitempty"`
}

// TokenService issues and verifies HMAC-signed session tokens.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

// TokenOption customizes a [TokenService].
type TokenOption func(*TokenService)

// WithClock replaces the wall clock used for iat, exp and expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(service *TokenService) {
		service.now = now
	}
}

// NewTokenService creates a new TokenService.
//
// algorithm must name an HMAC method ("HS256", "HS384" or "HS512"); ttl is the
// default lifetime used by [TokenService.IssueDefault].
func NewTokenService(secret, algorithm string, ttl time.Duration, options ...TokenOption) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: token secret must not be empty", ErrInvalidConfig)
	}

	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}

	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported signing algorithm %q", ErrInvalidConfig, algorithm)
	}

	if ttl <= 0 {
		return nil, fmt.Errorf("%w: token ttl must be positive, got %s", ErrInvalidConfig, ttl)
	}

	service := &TokenService{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
		now:    time.Now,
	}

	for _, option := range options {
		option(service)
	}

	return service, nil
}

// TTL returns the default token lifetime.
func (service *TokenService) TTL() time.Duration {
	return service.ttl
}

// Algorithm returns the JWT "alg" value used for signing.
func (service *TokenService) Algorithm() string {
	return service.method.Alg()
}

// IssueDefault signs payload with the configured default lifetime.
func (service *TokenService) IssueDefault(payload UserInfo) (string, error) {
	return service.Issue(payload, service.ttl)
}

// Issue signs a token carrying payload that expires ttl from now.
func (service *TokenService) Issue(payload UserInfo, ttl time.Duration) (string, error) {
	currentTime := service.now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(ttl)),
		},
		UserInfo: &payload,
	}

	token := jwt.NewWithClaims(service.method, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and expiry of tokenString and returns its payload.
//
// A token expires once the clock passes exp by a whole second, so it is
// still accepted at now == exp.
//
// Errors wrap one of [ErrInvalidSignature], [ErrExpired] or [ErrMissingPayload].
func (service *TokenService) Verify(tokenString string) (*UserInfo, error) {
	claims := &SessionClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			return service.secret, nil
		},
		jwt.WithValidMethods([]string{service.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(expiryLeeway),
		jwt.WithTimeFunc(service.now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrExpired, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	if claims.UserInfo == nil || claims.UserInfo.ID == "" {
		return nil, ErrMissingPayload
	}

	return claims.UserInfo, nil
}
