// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds table and column names used to build SQL statements.
package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table     string
	ID        string
	Email     string
	Password  string
	CreatedAt string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:     "users.account",
	ID:        "uid",
	Email:     "email",
	Password:  "master_pwd",
	CreatedAt: "created_at",
}

// Columns returns the columns of the public account projection.
//
// The password hash is deliberately absent; it is only ever compared in a
// WHERE clause.
func (t UserAccountTable) Columns() []string {
	return []string{t.ID, t.Email, t.CreatedAt}
}
