// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mgrodionov/fullstack-homework/internal/platform/apperr"
	"github.com/mgrodionov/fullstack-homework/internal/platform/ctxutil"
	"github.com/mgrodionov/fullstack-homework/internal/platform/dberr"
	"github.com/mgrodionov/fullstack-homework/internal/platform/sec"
	"github.com/mgrodionov/fullstack-homework/internal/platform/validate"
	"github.com/mgrodionov/fullstack-homework/pkg/emailnorm"
)

// # Contracts

// PasswordHasher turns a plaintext password into its stored form.
//
// The output must be deterministic: login looks accounts up by (email, hash).
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// TokenProvider issues and verifies session tokens.
type TokenProvider interface {
	// IssueDefault signs payload with the provider's default lifetime.
	IssueDefault(payload sec.UserInfo) (string, error)

	// Verify returns the payload of a valid, unexpired token.
	Verify(token string) (*sec.UserInfo, error)

	// TTL is the default token lifetime, also used for the cookie lifetime.
	TTL() time.Duration
}

// Service implements the account use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, login or
// session resolution must keep the client messages stable; the frontend keys
// its behavior off them.
type Service struct {
	store  UserStore
	hasher PasswordHasher
	tokens TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(store UserStore, hasher PasswordHasher, tokens TokenProvider) *Service {
	return &Service{store: store, hasher: hasher, tokens: tokens}
}

// # Registration Flow

/*
Register hashes the master password and persists a new account.

Parameters:
  - context: context.Context
  - input: Credentials

Returns:
  - *Account: Created entity
  - error: Conflict if the email exists, validation or storage errors
*/
func (service *Service) Register(context context.Context, input Credentials) (*Account, error) {
	email := emailnorm.Normalize(input.Email)

	// ── 1. Email Uniqueness ───────────────────────────────────────────────
	_, err := service.store.FindByEmail(context, email)
	switch {
	case err == nil:
		return nil, apperr.Conflict(msgEmailExists)
	case !errors.Is(err, dberr.ErrNotFound):
		return nil, fmt.Errorf("account_service_register_lookup_failed: %w", err)
	}

	// ── 2. Hashing ────────────────────────────────────────────────────────
	hash, err := service.hash(input.MasterPwd)
	if err != nil {
		return nil, err
	}

	// ── 3. Persistence ────────────────────────────────────────────────────
	// A concurrent registration can still win the race past step 1.
	account, err := service.store.Insert(context, email, hash)
	if err != nil {
		if errors.Is(err, dberr.ErrDuplicate) {
			return nil, apperr.Conflict(msgEmailExists)
		}
		return nil, fmt.Errorf("account_service_register_failed: %w", err)
	}

	ctxutil.Logger(context).InfoContext(context, "account_registered", slog.String("uid", account.ID))

	return account, nil
}

// # Authentication Flow

/*
Login checks credentials and issues a session token.

Description: The email must exist and the re-computed hash must match the
stored one. The two failures answer with different messages.

Returns:
  - *Session: Signed token, its lifetime and the account
  - error: NotFound for an unknown email or a wrong password
*/
func (service *Service) Login(context context.Context, input Credentials) (*Session, error) {
	logger := ctxutil.Logger(context)
	email := emailnorm.Normalize(input.Email)

	// ── 1. Email Lookup ───────────────────────────────────────────────────
	if _, err := service.store.FindByEmail(context, email); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			logger.InfoContext(context, "login_failed", slog.String("reason", "unknown_email"))
			return nil, apperr.NotFound(msgEmailNotFound)
		}
		return nil, fmt.Errorf("account_service_login_lookup_failed: %w", err)
	}

	// ── 2. Credential Match ───────────────────────────────────────────────
	hash, err := service.hash(input.MasterPwd)
	if err != nil {
		return nil, err
	}

	account, err := service.store.FindByEmailAndHash(context, email, hash)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			logger.InfoContext(context, "login_failed", slog.String("reason", "bad_password"))
			return nil, apperr.NotFound(msgBadCredentials)
		}
		return nil, fmt.Errorf("account_service_login_failed: %w", err)
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────
	token, err := service.tokens.IssueDefault(account.UserInfo())
	if err != nil {
		return nil, fmt.Errorf("account_service_token_generation_failed: %w", err)
	}

	logger.InfoContext(context, "login_succeeded", slog.String("uid", account.ID))

	return &Session{Token: token, TTL: service.tokens.TTL(), Account: account}, nil
}

/*
Authenticate resolves a session token into the account it was issued for.

# Flow
 1. An empty token means no session: Unauthorized "user not logged in".
 2. Any verification failure (bad signature, expired, no payload) answers
    Unauthorized "Could not validate credentials" with WWW-Authenticate. The
    specific reason is kept as the internal cause only.
 3. A valid token whose account is gone answers NotFound "user does not exist".
*/
func (service *Service) Authenticate(context context.Context, token string) (*Account, error) {

	// ── 1. No Token ───────────────────────────────────────────────────────
	if token == "" {
		return nil, apperr.Unauthorized(msgNotLoggedIn)
	}

	// ── 2. Token Verification ─────────────────────────────────────────────
	payload, err := service.tokens.Verify(token)
	if err != nil {
		ctxutil.Logger(context).DebugContext(context, "session_token_rejected", slog.Any("error", err))
		return nil, apperr.Unauthorized(msgInvalidToken).
			WithCause(err).
			WithHeader("WWW-Authenticate", "Bearer")
	}

	// ── 3. Account Resolution ─────────────────────────────────────────────
	account, err := service.store.FindByID(context, payload.ID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound(msgUserMissing)
		}
		return nil, fmt.Errorf("account_service_authenticate_failed: %w", err)
	}

	return account, nil
}

// ResolveSession adapts [Service.Authenticate] to the session middleware.
func (service *Service) ResolveSession(context context.Context, token string) (*sec.UserInfo, error) {
	account, err := service.Authenticate(context, token)
	if err != nil {
		return nil, err
	}

	info := account.UserInfo()
	return &info, nil
}

// # Account Management

/*
Delete removes the account and everything that references it.

Outstanding session tokens stay cryptographically valid until they expire,
but resolve to NotFound from then on.
*/
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.store.DeleteByID(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound(msgUserMissing)
		}
		return fmt.Errorf("account_service_delete_failed: %w", err)
	}

	ctxutil.Logger(context).InfoContext(context, "account_deleted", slog.String("uid", id))

	return nil
}

// # Helpers

// hash maps hasher input errors to a client-facing validation error.
func (service *Service) hash(plaintext string) (string, error) {
	hash, err := service.hasher.Hash(plaintext)
	switch {
	case err == nil:
		return hash, nil
	case errors.Is(err, sec.ErrEmptyPassword):
		return "", validate.RequiredError(FieldMasterPwd, "This field is required")
	case errors.Is(err, sec.ErrInvalidPassword):
		return "", validate.RequiredError(FieldMasterPwd, msgPasswordMalformed)
	default:
		return "", fmt.Errorf("account_service_hash_failed: %w", err)
	}
}
