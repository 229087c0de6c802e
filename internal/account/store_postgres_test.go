// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgrodionov/fullstack-homework/internal/account"
	"github.com/mgrodionov/fullstack-homework/internal/platform/apperr"
	"github.com/mgrodionov/fullstack-homework/internal/platform/dberr"
)

const storedID = "0192d1c4-5e6f-7a8b-9c0d-1e2f3a4b5c6d"

var (
	accountColumns = []string{"uid", "email", "created_at"}
	createdAt      = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func newMockStore(t *testing.T) (*account.PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return account.NewPostgresStore(mock), mock
}

/*
TestPostgresStore_FindByID covers a hit, a miss and a malformed ID.
*/
func TestPostgresStore_FindByID(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT uid, email, created_at FROM users.account WHERE uid = $1`)

	t.Run("found", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(query).WithArgs(storedID).
			WillReturnRows(mock.NewRows(accountColumns).AddRow(storedID, "a@x.com", createdAt))

		got, err := store.FindByID(ctx, storedID)
		require.NoError(t, err)
		assert.Equal(t, &account.Account{ID: storedID, Email: "a@x.com", CreatedAt: createdAt}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(query).WithArgs(storedID).WillReturnError(pgx.ErrNoRows)

		_, err := store.FindByID(ctx, storedID)
		assert.ErrorIs(t, err, dberr.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not_a_uuid", func(t *testing.T) {
		store, mock := newMockStore(t)

		_, err := store.FindByID(ctx, "42")
		assert.ErrorIs(t, err, dberr.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

/*
TestPostgresStore_FindByEmailAndHash compares email and hash inside the query.
*/
func TestPostgresStore_FindByEmailAndHash(t *testing.T) {
	store, mock := newMockStore(t)
	query := regexp.QuoteMeta(`SELECT uid, email, created_at FROM users.account WHERE email = $1 AND master_pwd = $2`)

	mock.ExpectQuery(query).WithArgs("a@x.com", "$2b$10$hash").
		WillReturnRows(mock.NewRows(accountColumns).AddRow(storedID, "a@x.com", createdAt))
	mock.ExpectQuery(query).WithArgs("a@x.com", "$2b$10$other").WillReturnError(pgx.ErrNoRows)

	got, err := store.FindByEmailAndHash(context.Background(), "a@x.com", "$2b$10$hash")
	require.NoError(t, err)
	assert.Equal(t, storedID, got.ID)

	_, err = store.FindByEmailAndHash(context.Background(), "a@x.com", "$2b$10$other")
	assert.ErrorIs(t, err, dberr.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresStore_FindByEmail_DatabaseError hides driver errors behind an internal error.
*/
func TestPostgresStore_FindByEmail_DatabaseError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = $1`)).WithArgs("a@x.com").
		WillReturnError(errors.New("connection reset by peer"))

	_, err := store.FindByEmail(context.Background(), "a@x.com")
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeInternal))
	assert.NotErrorIs(t, err, dberr.ErrNotFound)
}

/*
TestPostgresStore_Insert returns the stored row and maps unique violations.
*/
func TestPostgresStore_Insert(t *testing.T) {
	query := regexp.QuoteMeta(`INSERT INTO users.account (uid, email, master_pwd) VALUES ($1, $2, $3) RETURNING uid, email, created_at`)

	t.Run("created", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(query).WithArgs(pgxmock.AnyArg(), "a@x.com", "$2b$10$hash").
			WillReturnRows(mock.NewRows(accountColumns).AddRow(storedID, "a@x.com", createdAt))

		got, err := store.Insert(context.Background(), "a@x.com", "$2b$10$hash")
		require.NoError(t, err)
		assert.Equal(t, storedID, got.ID)
		assert.Equal(t, createdAt, got.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate_email", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(query).WithArgs(pgxmock.AnyArg(), "a@x.com", "$2b$10$hash").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "account_email_key"})

		_, err := store.Insert(context.Background(), "a@x.com", "$2b$10$hash")
		assert.ErrorIs(t, err, dberr.ErrDuplicate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

/*
TestPostgresStore_DeleteByID reports a miss when no row was removed.
*/
func TestPostgresStore_DeleteByID(t *testing.T) {
	query := regexp.QuoteMeta(`DELETE FROM users.account WHERE uid = $1`)

	t.Run("deleted", func(t *testing.T) {
		store, mock := newMockStore(t)
		// One statement only: owned rows go with ON DELETE CASCADE.
		mock.ExpectExec(query).WithArgs(storedID).WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, store.DeleteByID(context.Background(), storedID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already_gone", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(query).WithArgs(storedID).WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, store.DeleteByID(context.Background(), storedID), dberr.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
