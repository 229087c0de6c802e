// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import "context"

// UserStore defines the persistence contract for accounts.
//
// # Error Contract
//
// Lookups that match nothing return [dberr.ErrNotFound]. Insert returns
// [dberr.ErrDuplicate] when the email is taken. Callers match both with
// [errors.Is].
type UserStore interface {
	// FindByID looks an account up by its primary key.
	FindByID(ctx context.Context, id string) (*Account, error)

	// FindByEmail looks an account up by its unique email.
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// FindByEmailAndHash returns the account whose email and stored hash both match.
	FindByEmailAndHash(ctx context.Context, email, hash string) (*Account, error)

	// Insert creates an account and returns it with its generated ID.
	Insert(ctx context.Context, email, hash string) (*Account, error)

	// DeleteByID removes an account. Dependent rows go with it.
	DeleteByID(ctx context.Context, id string) error
}
