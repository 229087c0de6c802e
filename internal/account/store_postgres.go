// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mgrodionov/fullstack-homework/internal/platform/database/schema"
	"github.com/mgrodionov/fullstack-homework/internal/platform/dberr"
	"github.com/mgrodionov/fullstack-homework/internal/platform/postgres"
	"github.com/mgrodionov/fullstack-homework/pkg/uuidv7"
)

// # Repository Implementation

// PostgresStore implements [UserStore] on the users.account table.
type PostgresStore struct {
	db postgres.Querier
}

// NewPostgresStore creates a new PostgreSQL implementation of [UserStore].
func NewPostgresStore(db postgres.Querier) *PostgresStore {
	return &PostgresStore{db: db}
}

// selectColumns is the projection scanned by [scanAccount].
var selectColumns = strings.Join(schema.UserAccount.Columns(), ", ")

// scanAccount hydrates an [Account] from a row holding [selectColumns].
func scanAccount(row interface{ Scan(...any) error }) (*Account, error) {
	account := &Account{}
	if err := row.Scan(&account.ID, &account.Email, &account.CreatedAt); err != nil {
		return nil, err
	}
	return account, nil
}

/*
FindByID retrieves an account by its UUID.

IDs that are not valid UUIDs cannot match any row and return
[dberr.ErrNotFound] without a round trip.
*/
func (repository *PostgresStore) FindByID(context context.Context, id string) (*Account, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, dberr.ErrNotFound
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.UserAccount.Table, schema.UserAccount.ID)

	account, err := scanAccount(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "postgres_account_find_by_id_failed")
	}

	return account, nil
}

// FindByEmail retrieves an account by its unique email.
func (repository *PostgresStore) FindByEmail(context context.Context, email string) (*Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.UserAccount.Table, schema.UserAccount.Email)

	account, err := scanAccount(repository.db.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "postgres_account_find_by_email_failed")
	}

	return account, nil
}

/*
FindByEmailAndHash retrieves the account matching both email and password hash.

The hash is compared by the database with plain equality.
*/
func (repository *PostgresStore) FindByEmailAndHash(context context.Context, email, hash string) (*Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		selectColumns, schema.UserAccount.Table, schema.UserAccount.Email, schema.UserAccount.Password)

	account, err := scanAccount(repository.db.QueryRow(context, query, email, hash))
	if err != nil {
		return nil, dberr.Wrap(err, "postgres_account_find_by_credentials_failed")
	}

	return account, nil
}

/*
Insert persists a new account with a time-ordered UUIDv7 primary key.

Returns:
  - *Account: The stored row, including the database-assigned created_at
  - error: dberr.ErrDuplicate if the email exists, or database errors
*/
func (repository *PostgresStore) Insert(context context.Context, email, hash string) (*Account, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		schema.UserAccount.Table,
		schema.UserAccount.ID, schema.UserAccount.Email, schema.UserAccount.Password,
		selectColumns)

	account, err := scanAccount(repository.db.QueryRow(context, query, uuidv7.New(), email, hash))
	if err != nil {
		return nil, dberr.Wrap(err, "postgres_account_insert_failed")
	}

	return account, nil
}

// DeleteByID removes the account; foreign keys cascade to dependent rows.
func (repository *PostgresStore) DeleteByID(context context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return dberr.ErrNotFound
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.UserAccount.Table, schema.UserAccount.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "postgres_account_delete_failed")
	}

	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
