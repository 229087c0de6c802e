// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account implements registration, login, session resolution and
account deletion.

Architecture:

  - Service: Orchestrates the use cases over a [UserStore], a password hasher
    and a session token issuer.
  - Store: [PostgresStore] is the source of truth; [CachedStore] optionally
    fronts it with Redis for ID lookups.
  - Handler: The chi-based HTTP layer, carrying the session in the
    "access_token" cookie.
*/
package account

import (
	"time"

	"github.com/mgrodionov/fullstack-homework/internal/platform/sec"
)

// # Domain Types

// Account is a registered user as seen by the rest of the service.
//
// The password hash never leaves the store layer.
type Account struct {
	ID        string    `json:"uid"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserInfo returns the identity embedded in this account's session tokens.
func (account *Account) UserInfo() sec.UserInfo {
	return sec.UserInfo{ID: account.ID, Email: account.Email}
}

// Credentials is the email and master password pair submitted to register or log in.
type Credentials struct {
	Email     string
	MasterPwd string
}

// Session is the outcome of a successful login.
type Session struct {
	Token   string
	TTL     time.Duration
	Account *Account
}

// # JSON Field Identifiers

const (
	FieldEmail     = "email"
	FieldMasterPwd = "master_pwd"
)

// MaxEmailLength is the longest address accepted (RFC 5321 path limit).
const MaxEmailLength = 254

// # Client Messages

const (
	msgNotLoggedIn       = "user not logged in"
	msgInvalidToken      = "Could not validate credentials"
	msgUserMissing       = "user does not exist"
	msgEmailNotFound     = "email not found"
	msgBadCredentials    = "invalid email/password"
	msgEmailExists       = "email already exists"
	msgPasswordMalformed = "Password contains unsupported characters"
)
